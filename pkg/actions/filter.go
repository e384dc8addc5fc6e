package actions

import (
	"fmt"
	"strconv"

	"github.com/indexer-tools/actionq/pkg/types"
)

// BuildActionFilter maps the optional criteria onto an ActionFilter. Empty
// arguments are skipped; supplying none of them is an error.
func BuildActionFilter(id, actionType, status, source, reason string) (types.ActionFilter, error) {
	var filter types.ActionFilter

	if id != "" {
		parsed, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid action id %q: %w", id, err)
		}
		filter.ID = &parsed
	}

	if actionType != "" {
		validated, err := types.ValidateActionType(actionType)
		if err != nil {
			return filter, err
		}
		filter.Type = &validated
	}

	if status != "" {
		validated, err := types.ValidateActionStatus(status)
		if err != nil {
			return filter, err
		}
		filter.Status = &validated
	}

	if source != "" {
		filter.Source = &source
	}

	if reason != "" {
		filter.Reason = &reason
	}

	if filter.IsEmpty() {
		return filter, ErrEmptyFilter
	}
	return filter, nil
}
