package actionservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indexer-tools/actionq/internal/actionserver"
	"github.com/indexer-tools/actionq/pkg/logging"
	"github.com/indexer-tools/actionq/pkg/types"
)

func newTestClient(t *testing.T) (*Client, *httptest.Server) {
	t.Helper()
	server := actionserver.NewServer(logging.NoOpLogger{})
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	client, err := NewClient(logging.NoOpLogger{}, ts.URL)
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client, ts
}

func testInput(actionType types.ActionType) types.ActionInput {
	return types.ActionInput{
		DeploymentID:    "QmZZ8f5oJXRifkf3Qoq2e5tq2VwDYtVcCRTF3kSAgSBrHx",
		Amount:          "1000",
		Type:            actionType,
		Source:          "indexerAgent",
		Reason:          "manual",
		Status:          types.ActionStatusQueued,
		ProtocolNetwork: "arbitrum-one",
	}
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(nil, "http://localhost:8000")
	assert.Error(t, err)

	_, err = NewClient(logging.NoOpLogger{}, "not-a-url")
	assert.Error(t, err)
}

func TestQueueActions(t *testing.T) {
	client, _ := newTestClient(t)

	results, err := client.QueueActions(context.Background(), []types.ActionInput{testInput(types.ActionTypeAllocate)})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].ID)
	assert.Equal(t, types.ActionStatusQueued, results[0].Status)
	assert.Equal(t, "1000", results[0].Amount)
}

func TestQueueActions_EmptyBatch(t *testing.T) {
	client, _ := newTestClient(t)

	// An empty batch is not an error; it just queues nothing.
	results, err := client.QueueActions(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestApproveAndExecute(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	queued, err := client.QueueActions(ctx, []types.ActionInput{testInput(types.ActionTypeAllocate)})
	require.NoError(t, err)

	approved, err := client.ApproveActions(ctx, []int64{queued[0].ID})
	require.NoError(t, err)
	assert.Equal(t, types.ActionStatusApproved, approved[0].Status)

	executed, err := client.ExecuteApprovedActions(ctx)
	require.NoError(t, err)
	require.Len(t, executed, 1)
	assert.Equal(t, types.ActionStatusSuccess, executed[0].Status)
	assert.NotEmpty(t, executed[0].Transaction)
}

func TestCancelAndDelete(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	queued, err := client.QueueActions(ctx, []types.ActionInput{testInput(types.ActionTypeAllocate)})
	require.NoError(t, err)

	canceled, err := client.CancelActions(ctx, []int64{queued[0].ID})
	require.NoError(t, err)
	assert.Equal(t, types.ActionStatusCanceled, canceled[0].Status)

	_, err = client.DeleteActions(ctx, []int64{queued[0].ID})
	require.NoError(t, err)

	_, err = client.FetchAction(ctx, queued[0].ID)
	var remoteErr *RemoteOperationError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "fetchAction", remoteErr.Operation)
	assert.Contains(t, remoteErr.Message, "not found")
}

func TestFetchActions_FilterAndPaging(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	inputs := []types.ActionInput{
		testInput(types.ActionTypeAllocate),
		testInput(types.ActionTypeAllocate),
		testInput(types.ActionTypeUnallocate),
	}
	_, err := client.QueueActions(ctx, inputs)
	require.NoError(t, err)

	allocate := types.ActionTypeAllocate
	results, err := client.FetchActions(ctx, types.ActionFilter{Type: &allocate}, nil)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = client.FetchActions(ctx, types.ActionFilter{Type: &allocate}, &FetchOptions{
		First:          1,
		OrderDirection: types.OrderDirectionDesc,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(2), results[0].ID)
}

func TestUpdateActions(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, err := client.QueueActions(ctx, []types.ActionInput{testInput(types.ActionTypeAllocate)})
	require.NoError(t, err)

	queued := types.ActionStatusQueued
	approved := types.ActionStatusApproved
	results, err := client.UpdateActions(ctx,
		types.ActionFilter{Status: &queued},
		types.ActionUpdateInput{Status: &approved},
	)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, types.ActionStatusApproved, results[0].Status)
}

func TestUpdateActions_EmptyFilterRejectedRemotely(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.UpdateActions(context.Background(), types.ActionFilter{}, types.ActionUpdateInput{})
	var remoteErr *RemoteOperationError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
}

func TestRemoteErrorSurfacedVerbatim(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"allocation already closed"}`))
	}))
	defer ts.Close()

	client, err := NewClient(logging.NoOpLogger{}, ts.URL)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.ApproveActions(context.Background(), []int64{1})
	var remoteErr *RemoteOperationError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "approveActions", remoteErr.Operation)
	assert.Equal(t, "allocation already closed", remoteErr.Message)
	assert.Equal(t, http.StatusConflict, remoteErr.StatusCode)
}

func TestHealthCheck(t *testing.T) {
	client, _ := newTestClient(t)
	assert.NoError(t, client.HealthCheck(context.Background()))
}
