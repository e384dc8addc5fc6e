package types

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ActionType identifies the allocation change an action requests.
type ActionType string

const (
	ActionTypeAllocate   ActionType = "ALLOCATE"
	ActionTypeUnallocate ActionType = "UNALLOCATE"
	ActionTypeReallocate ActionType = "REALLOCATE"
)

// ActionTypes lists every valid action type in the order used for error
// messages. Keep it stable; the text of InvalidEnumError depends on it.
var ActionTypes = []ActionType{
	ActionTypeAllocate,
	ActionTypeUnallocate,
	ActionTypeReallocate,
}

// ActionStatus tracks an action through the remote queue lifecycle.
type ActionStatus string

const (
	ActionStatusQueued   ActionStatus = "QUEUED"
	ActionStatusApproved ActionStatus = "APPROVED"
	ActionStatusPending  ActionStatus = "PENDING"
	ActionStatusSuccess  ActionStatus = "SUCCESS"
	ActionStatusFailed   ActionStatus = "FAILED"
	ActionStatusCanceled ActionStatus = "CANCELED"
)

var ActionStatuses = []ActionStatus{
	ActionStatusQueued,
	ActionStatusApproved,
	ActionStatusPending,
	ActionStatusSuccess,
	ActionStatusFailed,
	ActionStatusCanceled,
}

// InvalidEnumError reports a token that matched none of a closed enum's
// variants. Valid keeps the canonical ordering.
type InvalidEnumError struct {
	Enum  string
	Value string
	Valid []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of [%s]", e.Enum, e.Value, strings.Join(e.Valid, ", "))
}

// ValidateActionType matches text against the canonical action types,
// case-insensitively.
func ValidateActionType(text string) (ActionType, error) {
	for _, t := range ActionTypes {
		if strings.EqualFold(text, string(t)) {
			return t, nil
		}
	}
	return "", &InvalidEnumError{
		Enum:  "ActionType",
		Value: text,
		Valid: actionTypeNames(),
	}
}

// ValidateActionStatus matches text against the canonical action statuses,
// case-insensitively.
func ValidateActionStatus(text string) (ActionStatus, error) {
	for _, s := range ActionStatuses {
		if strings.EqualFold(text, string(s)) {
			return s, nil
		}
	}
	return "", &InvalidEnumError{
		Enum:  "ActionStatus",
		Value: text,
		Valid: actionStatusNames(),
	}
}

func actionTypeNames() []string {
	names := make([]string, len(ActionTypes))
	for i, t := range ActionTypes {
		names[i] = string(t)
	}
	return names
}

func actionStatusNames() []string {
	names := make([]string, len(ActionStatuses))
	for i, s := range ActionStatuses {
		names[i] = string(s)
	}
	return names
}

// ZeroPOI is the 32-byte all-zero proof-of-indexing hash, used when an
// unallocation should be submitted without a real POI.
var ZeroPOI = common.Hash{}.Hex()

// ActionInput describes a requested change to the remote allocation queue.
// Which fields are required depends on Type; see actions.ValidateActionInput.
type ActionInput struct {
	DeploymentID    string       `json:"deploymentID"`
	AllocationID    string       `json:"allocationID,omitempty"`
	Amount          string       `json:"amount,omitempty"`
	POI             string       `json:"poi,omitempty"`
	Force           bool         `json:"force"`
	Type            ActionType   `json:"type"`
	Source          string       `json:"source"`
	Reason          string       `json:"reason"`
	Status          ActionStatus `json:"status"`
	Priority        int          `json:"priority"`
	ProtocolNetwork string       `json:"protocolNetwork"`
}

// ActionResult is an ActionInput as echoed back by the management service,
// with the server-assigned id and execution outcome fields.
type ActionResult struct {
	ID              int64        `json:"id"`
	DeploymentID    string       `json:"deploymentID"`
	AllocationID    string       `json:"allocationID,omitempty"`
	Amount          string       `json:"amount,omitempty"`
	POI             string       `json:"poi,omitempty"`
	Force           bool         `json:"force"`
	Type            ActionType   `json:"type"`
	Source          string       `json:"source"`
	Reason          string       `json:"reason"`
	Status          ActionStatus `json:"status"`
	Priority        int          `json:"priority"`
	ProtocolNetwork string       `json:"protocolNetwork"`
	Transaction     string       `json:"transaction,omitempty"`
	FailureReason   string       `json:"failureReason,omitempty"`
}

// ActionFilter narrows fetch and update operations. At least one criterion
// must be set; actions.BuildActionFilter enforces that.
type ActionFilter struct {
	ID     *int64        `json:"id,omitempty"`
	Type   *ActionType   `json:"type,omitempty"`
	Status *ActionStatus `json:"status,omitempty"`
	Source *string       `json:"source,omitempty"`
	Reason *string       `json:"reason,omitempty"`
}

// IsEmpty reports whether no criterion is set.
func (f ActionFilter) IsEmpty() bool {
	return f.ID == nil && f.Type == nil && f.Status == nil && f.Source == nil && f.Reason == nil
}

// ActionUpdateInput carries the subset of action fields a bulk update may
// change. Amount is already converted to base units when this struct is
// populated by actions.ParseActionUpdateInput.
type ActionUpdateInput struct {
	ID           *int64        `json:"id,omitempty"`
	DeploymentID *string       `json:"deploymentID,omitempty"`
	AllocationID *string       `json:"allocationID,omitempty"`
	Amount       *BigInt       `json:"amount,omitempty"`
	POI          *string       `json:"poi,omitempty"`
	Force        *bool         `json:"force,omitempty"`
	Type         *ActionType   `json:"type,omitempty"`
	Status       *ActionStatus `json:"status,omitempty"`
	Reason       *string       `json:"reason,omitempty"`
}
