package kinematics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is the kind shared by every rejected parameter.
// Match it with errors.Is; use errors.As with *ParamError for details.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError describes a single rejected parameter.
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("kinematics: invalid parameter %s=%g", e.Field, e.Value)
	}
	return fmt.Sprintf("kinematics: invalid parameter %s=%g: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(field string, value float64, reason string) error {
	return &ParamError{Field: field, Value: value, Reason: reason}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
