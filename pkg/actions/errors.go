package actions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/indexer-tools/actionq/pkg/types"
)

// ErrEmptyFilter is returned when a fetch or bulk update is attempted with
// no filter criteria at all.
var ErrEmptyFilter = errors.New("no filter criteria provided: set at least one of id, type, status, source, reason")

// MissingParameterError reports every required field absent for the
// requested action type. Validation collects all of them before failing.
type MissingParameterError struct {
	Type   types.ActionType
	Fields []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameters for %s action: [%s]", e.Type, strings.Join(e.Fields, ", "))
}

// ParseError reports an update field whose value failed its parser, or a
// field no parser is registered for.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse update field %q: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
