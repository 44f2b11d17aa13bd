package cooling

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every parameter failure: a field that
// does not parse as a number, too few samples or a non-positive time bound.
var ErrInvalidParameter = errors.New("cooling: invalid parameter")

// ParamError identifies the offending field. Err holds the parse error, if
// the failure came from parsing.
type ParamError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ParamError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s %s. Got: %s", e.Field, e.Reason, e.Value)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func invalid(field, reason string) error {
	return &ParamError{Field: field, Reason: reason}
}
