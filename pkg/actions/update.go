package actions

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/indexer-tools/actionq/pkg/types"
)

// fieldParser parses one update field's raw value into its slot on the
// ActionUpdateInput. A nil raw value is legal for the fields whose parser
// accepts it and simply leaves the slot unset.
type fieldParser func(update *types.ActionUpdateInput, value interface{}) error

// updateFieldParsers is the closed table of fields a bulk update may touch.
// A key with no entry here fails the whole update.
var updateFieldParsers = map[string]fieldParser{
	"id": func(update *types.ActionUpdateInput, value interface{}) error {
		if value == nil {
			return nil
		}
		id, err := parseInt64(value)
		if err != nil {
			return err
		}
		update.ID = &id
		return nil
	},
	"deploymentID": func(update *types.ActionUpdateInput, value interface{}) error {
		if value == nil {
			return nil
		}
		str, err := parseString(value)
		if err != nil {
			return err
		}
		update.DeploymentID = &str
		return nil
	},
	"allocationID": func(update *types.ActionUpdateInput, value interface{}) error {
		str, err := parseString(value)
		if err != nil {
			return err
		}
		update.AllocationID = &str
		return nil
	},
	"amount": func(update *types.ActionUpdateInput, value interface{}) error {
		if value == nil {
			return nil
		}
		str, err := parseString(value)
		if err != nil {
			return err
		}
		baseUnits, err := ParseTokenAmount(str)
		if err != nil {
			return err
		}
		update.Amount = types.NewBigInt(baseUnits)
		return nil
	},
	"poi": func(update *types.ActionUpdateInput, value interface{}) error {
		if value == nil {
			return nil
		}
		str, err := parseString(value)
		if err != nil {
			return err
		}
		normalized, err := ValidatePOI(str)
		if err != nil {
			return err
		}
		update.POI = &normalized
		return nil
	},
	"force": func(update *types.ActionUpdateInput, value interface{}) error {
		force, err := parseBool(value)
		if err != nil {
			return err
		}
		update.Force = &force
		return nil
	},
	"type": func(update *types.ActionUpdateInput, value interface{}) error {
		str, err := parseString(value)
		if err != nil {
			return err
		}
		actionType, err := types.ValidateActionType(str)
		if err != nil {
			return err
		}
		update.Type = &actionType
		return nil
	},
	"status": func(update *types.ActionUpdateInput, value interface{}) error {
		str, err := parseString(value)
		if err != nil {
			return err
		}
		status, err := types.ValidateActionStatus(str)
		if err != nil {
			return err
		}
		update.Status = &status
		return nil
	},
	"reason": func(update *types.ActionUpdateInput, value interface{}) error {
		if value == nil {
			return nil
		}
		str, err := parseString(value)
		if err != nil {
			return err
		}
		update.Reason = &str
		return nil
	},
}

// ParseActionUpdateInput runs every present key through its registered
// parser. The policy is fail-fast: the first failing field aborts the whole
// parse and no partial result is returned. Keys are visited in sorted order
// so the reported field is deterministic.
func ParseActionUpdateInput(input map[string]interface{}) (*types.ActionUpdateInput, error) {
	update := &types.ActionUpdateInput{}

	keys := make([]string, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		parser, ok := updateFieldParsers[key]
		if !ok {
			return nil, &ParseError{Field: key, Err: errors.New("no parser registered for this field")}
		}
		if err := parser(update, input[key]); err != nil {
			return nil, &ParseError{Field: key, Err: err}
		}
	}

	return update, nil
}

func parseString(value interface{}) (string, error) {
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", value)
	}
	return str, nil
}

func parseBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid boolean %q", v)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("expected a boolean, got %T", value)
	}
}

func parseInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", value)
	}
}
