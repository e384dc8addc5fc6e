package actionservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/indexer-tools/actionq/pkg/httpclient"
	"github.com/indexer-tools/actionq/pkg/logging"
	"github.com/indexer-tools/actionq/pkg/metrics"
	"github.com/indexer-tools/actionq/pkg/types"
	"github.com/indexer-tools/actionq/pkg/validator"
)

// Client handles communication with the action management service. It is
// stateless apart from the connection handle; one outstanding request per
// caller at a time.
type Client struct {
	logger     logging.Logger
	serviceURL string
	httpClient *httpclient.Client
}

// NewClient creates a new action management service client
func NewClient(logger logging.Logger, serviceURL string) (*Client, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if !validator.IsValidRPCAddress(serviceURL) {
		return nil, fmt.Errorf("invalid management service URL %q", serviceURL)
	}

	httpClient, err := httpclient.New(httpclient.DefaultConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &Client{
		logger:     logger,
		serviceURL: serviceURL,
		httpClient: httpClient,
	}, nil
}

// RemoteOperationError carries a failure reported by the management
// service, verbatim.
type RemoteOperationError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *RemoteOperationError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// QueueActions submits a batch of validated action inputs to the queue.
// An empty batch is legal and returns an empty result list.
func (c *Client) QueueActions(ctx context.Context, inputs []types.ActionInput) ([]types.ActionResult, error) {
	if inputs == nil {
		inputs = []types.ActionInput{}
	}
	return c.postActions(ctx, "queueActions", "/api/actions/queue", types.QueueActionsRequest{Actions: inputs})
}

// ApproveActions marks the given queued actions as approved for execution.
func (c *Client) ApproveActions(ctx context.Context, ids []int64) ([]types.ActionResult, error) {
	return c.postActions(ctx, "approveActions", "/api/actions/approve", types.ActionIDsRequest{IDs: ids})
}

// ExecuteApprovedActions asks the service to execute everything approved.
func (c *Client) ExecuteApprovedActions(ctx context.Context) ([]types.ActionResult, error) {
	return c.postActions(ctx, "executeApprovedActions", "/api/actions/execute", struct{}{})
}

// CancelActions cancels the given actions.
func (c *Client) CancelActions(ctx context.Context, ids []int64) ([]types.ActionResult, error) {
	return c.postActions(ctx, "cancelActions", "/api/actions/cancel", types.ActionIDsRequest{IDs: ids})
}

// DeleteActions removes the given actions from the queue.
func (c *Client) DeleteActions(ctx context.Context, ids []int64) ([]types.ActionResult, error) {
	return c.postActions(ctx, "deleteActions", "/api/actions/delete", types.ActionIDsRequest{IDs: ids})
}

// UpdateActions applies a partial update to every action matching the
// filter.
func (c *Client) UpdateActions(ctx context.Context, filter types.ActionFilter, update types.ActionUpdateInput) ([]types.ActionResult, error) {
	return c.postActions(ctx, "updateActions", "/api/actions/update", types.UpdateActionsRequest{Filter: filter, Update: update})
}

// FetchAction fetches a single action by its server-assigned id.
func (c *Client) FetchAction(ctx context.Context, id int64) (*types.ActionResult, error) {
	const operation = "fetchAction"
	done := metrics.TrackRemoteOperation(operation)
	var opErr error
	defer func() { done(opErr) }()

	endpoint := fmt.Sprintf("%s/api/actions/%d", c.serviceURL, id)
	resp, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		opErr = fmt.Errorf("%s request failed: %w", operation, err)
		return nil, opErr
	}

	var result types.ActionResponse
	if opErr = c.decodeResponse(operation, resp, &result); opErr != nil {
		return nil, opErr
	}
	return &result.Action, nil
}

// FetchOptions are the optional paging and ordering arguments of
// FetchActions.
type FetchOptions struct {
	First          int
	OrderBy        string
	OrderDirection string
}

// FetchActions fetches every action matching the filter.
func (c *Client) FetchActions(ctx context.Context, filter types.ActionFilter, opts *FetchOptions) ([]types.ActionResult, error) {
	const operation = "fetchActions"
	done := metrics.TrackRemoteOperation(operation)
	var opErr error
	defer func() { done(opErr) }()

	query := url.Values{}
	if filter.ID != nil {
		query.Set("id", strconv.FormatInt(*filter.ID, 10))
	}
	if filter.Type != nil {
		query.Set("type", string(*filter.Type))
	}
	if filter.Status != nil {
		query.Set("status", string(*filter.Status))
	}
	if filter.Source != nil {
		query.Set("source", *filter.Source)
	}
	if filter.Reason != nil {
		query.Set("reason", *filter.Reason)
	}
	if opts != nil {
		if opts.First > 0 {
			query.Set("first", strconv.Itoa(opts.First))
		}
		if opts.OrderBy != "" {
			query.Set("orderBy", opts.OrderBy)
		}
		if opts.OrderDirection != "" {
			query.Set("orderDirection", opts.OrderDirection)
		}
	}

	endpoint := fmt.Sprintf("%s/api/actions?%s", c.serviceURL, query.Encode())
	resp, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		opErr = fmt.Errorf("%s request failed: %w", operation, err)
		return nil, opErr
	}

	var result types.ActionsResponse
	if opErr = c.decodeResponse(operation, resp, &result); opErr != nil {
		return nil, opErr
	}
	return result.Actions, nil
}

// HealthCheck checks if the management service is reachable and healthy
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("%s/api/health", c.serviceURL))
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: status code %d", resp.StatusCode)
	}
	return nil
}

// Close closes the underlying HTTP client
func (c *Client) Close() {
	c.httpClient.Close()
}

func (c *Client) postActions(ctx context.Context, operation, path string, payload interface{}) ([]types.ActionResult, error) {
	done := metrics.TrackRemoteOperation(operation)
	var opErr error
	defer func() { done(opErr) }()

	body, err := json.Marshal(payload)
	if err != nil {
		opErr = fmt.Errorf("failed to marshal %s request: %w", operation, err)
		return nil, opErr
	}

	resp, err := c.httpClient.Post(ctx, c.serviceURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		opErr = fmt.Errorf("%s request failed: %w", operation, err)
		return nil, opErr
	}

	var result types.ActionsResponse
	if opErr = c.decodeResponse(operation, resp, &result); opErr != nil {
		return nil, opErr
	}

	c.logger.Debugf("%s returned %d actions", operation, len(result.Actions))
	return result.Actions, nil
}

// decodeResponse closes the body, surfaces remote-reported errors verbatim,
// and unmarshals successful responses into target.
func (c *Client) decodeResponse(operation string, resp *http.Response, target interface{}) error {
	body, err := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read %s response body: %w", operation, err)
	}
	if closeErr != nil {
		c.logger.Warnf("Failed to close response body: %v", closeErr)
	}

	if resp.StatusCode != http.StatusOK {
		message := string(body)
		var remoteErr types.ErrorResponse
		if json.Unmarshal(body, &remoteErr) == nil && remoteErr.Error != "" {
			message = remoteErr.Error
		}
		return &RemoteOperationError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to unmarshal %s response: %w", operation, err)
	}
	return nil
}
