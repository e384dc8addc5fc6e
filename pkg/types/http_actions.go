package types

import "time"

// Request and response bodies exchanged with the action management service.
// One shape per remote operation; the route table lives in
// pkg/client/actionservice and internal/actionserver.

type QueueActionsRequest struct {
	Actions []ActionInput `json:"actions"`
}

type ActionIDsRequest struct {
	IDs []int64 `json:"ids"`
}

type UpdateActionsRequest struct {
	Filter ActionFilter      `json:"filter"`
	Update ActionUpdateInput `json:"update"`
}

type ActionsResponse struct {
	Actions []ActionResult `json:"actions"`
}

type ActionResponse struct {
	Action ActionResult `json:"action"`
}

// ErrorResponse carries a remote-reported failure. The message is surfaced
// to callers verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OrderDirection for fetchActions
const (
	OrderDirectionAsc  = "asc"
	OrderDirectionDesc = "desc"
)

// HealthCheckResponse represents the response from the health check endpoint
type HealthCheckResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Error     string    `json:"error,omitempty"`
}
