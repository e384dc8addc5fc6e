package actions

import (
	"github.com/indexer-tools/actionq/pkg/types"
)

// QueueParams carries the per-type parameters of a queue request with named
// fields. The CLI maps its positional arguments onto these names in one
// place, so slot reinterpretation never leaks past the outermost layer.
type QueueParams struct {
	// Target is the deployment the action applies to. Required for every
	// action type.
	Target string
	// AllocationID identifies the allocation being closed or resized.
	// Required for UNALLOCATE and REALLOCATE.
	AllocationID string
	// Amount is the token amount to allocate, as entered by the caller.
	// Required for ALLOCATE and REALLOCATE.
	Amount string
	// POI is an optional proof of indexing for UNALLOCATE and REALLOCATE.
	// "0" and "0x0" are shorthand for the all-zero hash.
	POI string
	// Force is the raw boolean token; only the literal "true" enables it.
	Force string
}

// requiredFields maps each action type to the QueueParams fields it cannot
// do without, in the order they are reported.
var requiredFields = map[types.ActionType][]struct {
	name    string
	present func(QueueParams) bool
}{
	types.ActionTypeAllocate: {
		{"deploymentID", func(p QueueParams) bool { return p.Target != "" }},
		{"amount", func(p QueueParams) bool { return p.Amount != "" }},
	},
	types.ActionTypeUnallocate: {
		{"deploymentID", func(p QueueParams) bool { return p.Target != "" }},
		{"allocationID", func(p QueueParams) bool { return p.AllocationID != "" }},
	},
	types.ActionTypeReallocate: {
		{"deploymentID", func(p QueueParams) bool { return p.Target != "" }},
		{"allocationID", func(p QueueParams) bool { return p.AllocationID != "" }},
		{"amount", func(p QueueParams) bool { return p.Amount != "" }},
	},
}

// ValidateActionInput checks that every field the action type requires is
// present, reporting all missing fields at once.
func ValidateActionInput(actionType types.ActionType, params QueueParams) error {
	required, ok := requiredFields[actionType]
	if !ok {
		_, err := types.ValidateActionType(string(actionType))
		return err
	}

	var missing []string
	for _, field := range required {
		if !field.present(params) {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &MissingParameterError{Type: actionType, Fields: missing}
	}
	return nil
}

// BuildActionInput validates params against the action type's contract and
// assembles the ActionInput submitted to the management service. No record
// is constructed when validation fails.
func BuildActionInput(
	actionType types.ActionType,
	params QueueParams,
	source string,
	reason string,
	status types.ActionStatus,
	priority int,
	protocolNetwork string,
) (*types.ActionInput, error) {
	if err := ValidateActionInput(actionType, params); err != nil {
		return nil, err
	}

	input := &types.ActionInput{
		DeploymentID:    params.Target,
		Force:           params.Force == "true",
		Type:            actionType,
		Source:          source,
		Reason:          reason,
		Status:          status,
		Priority:        priority,
		ProtocolNetwork: protocolNetwork,
	}

	switch actionType {
	case types.ActionTypeAllocate:
		input.Amount = params.Amount
	case types.ActionTypeUnallocate:
		input.AllocationID = params.AllocationID
	case types.ActionTypeReallocate:
		input.AllocationID = params.AllocationID
		input.Amount = params.Amount
	}

	if (actionType == types.ActionTypeUnallocate || actionType == types.ActionTypeReallocate) && params.POI != "" {
		input.POI = NormalizePOI(params.POI)
	}

	return input, nil
}
