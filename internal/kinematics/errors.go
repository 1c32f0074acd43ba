package kinematics

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against the typed results below.
var (
	ErrUnreachable = errors.New("target unreachable")
	ErrDegenerate  = errors.New("degenerate configuration")
)

// UnreachableError reports a wrist center outside the two-link reach
// envelope [Min, Max]. It is an expected outcome, not a fault.
type UnreachableError struct {
	Reach float64
	Min   float64
	Max   float64
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("target unreachable: wrist distance %.3f outside [%.3f, %.3f]", e.Reach, e.Min, e.Max)
}

// Is makes errors.Is(err, ErrUnreachable) hold.
func (e *UnreachableError) Is(target error) bool {
	return target == ErrUnreachable
}

// DegenerateError reports input the solver refuses to work with: non-finite
// values, invalid geometry, a wrist center on top of the shoulder or a
// partial chain that cannot be inverted reliably.
type DegenerateError struct {
	Reason string
	Err    error
}

// NewDegenerateError wraps err (which may be nil) with a reason.
func NewDegenerateError(reason string, err error) error {
	return &DegenerateError{Reason: reason, Err: err}
}

func (e *DegenerateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("degenerate: %s: %v", e.Reason, e.Err)
	}
	return "degenerate: " + e.Reason
}

// Is makes errors.Is(err, ErrDegenerate) hold.
func (e *DegenerateError) Is(target error) bool {
	return target == ErrDegenerate
}

func (e *DegenerateError) Unwrap() error {
	return e.Err
}
