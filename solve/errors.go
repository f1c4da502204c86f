package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rootfind/secant"
)

// Sentinel errors wrapped by *ValidationError.
var (
	ErrEmptyEquation        = errors.New("solve: equation is empty")
	ErrUnknownMethod        = errors.New("solve: unknown method")
	ErrInvalidTolerance     = errors.New("solve: tolerance must be finite and > 0")
	ErrInvalidMaxIterations = errors.New("solve: max iterations out of range")
	ErrNonFiniteInput       = errors.New("solve: starting point must be finite")
	ErrMissingSecondPoint   = errors.New("solve: method requires a second starting point")
	ErrIdenticalPoints      = secant.ErrIdenticalPoints
	ErrInvalidSearchRange   = errors.New("solve: search range must be finite and > 0")
	ErrInvalidSubintervals  = errors.New("solve: number of search points out of range")
	ErrInvalidWindow        = errors.New("solve: search window around the starting point is not representable")
)

// ValidationError names the request field that failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
