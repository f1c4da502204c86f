package config

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError names one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors collects every invalid field.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "config: " + strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrInvalidConfig) true.
func (e ValidateErrors) Is(target error) bool { return target == ErrInvalidConfig }

// Fields returns the names of the invalid fields in order.
func (e ValidateErrors) Fields() []string {
	out := make([]string, len(e))
	for i, err := range e {
		out[i] = err.Field
	}
	return out
}

// Validate checks every field and returns ValidateErrors, or nil.
func (c *Config) Validate() error {
	var errs ValidateErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	s := c.Solver
	if !positive(s.Tolerance) {
		add("solver.tolerance", "must be finite and > 0, got %g", s.Tolerance)
	}
	if s.MaxIterations < 1 {
		add("solver.max_iterations", "must be >= 1, got %d", s.MaxIterations)
	}
	if s.MaxIterationsUpperBound < s.MaxIterations {
		add("solver.max_iterations_upper_bound", "must be >= max_iterations (%d), got %d", s.MaxIterations, s.MaxIterationsUpperBound)
	}
	if !(s.DerivativeFloor >= 0) || math.IsInf(s.DerivativeFloor, 0) {
		add("solver.derivative_floor", "must be finite and >= 0, got %g", s.DerivativeFloor)
	}
	if !(s.StallFloor >= 0) || math.IsInf(s.StallFloor, 0) {
		add("solver.stall_floor", "must be finite and >= 0, got %g", s.StallFloor)
	}
	if !(s.DivergenceBound > 0) {
		add("solver.divergence_bound", "must be > 0, got %g", s.DivergenceBound)
	}

	sc := c.Scan
	if !positive(sc.HalfWidth) {
		add("scan.half_width", "must be finite and > 0, got %g", sc.HalfWidth)
	}
	if sc.Subintervals < 2 {
		add("scan.subintervals", "must be >= 2, got %d", sc.Subintervals)
	}
	if sc.MaxSubintervals < sc.Subintervals {
		add("scan.max_subintervals", "must be >= subintervals (%d), got %d", sc.Subintervals, sc.MaxSubintervals)
	}
	if !(sc.MergeTolerance >= 0) || math.IsInf(sc.MergeTolerance, 0) {
		add("scan.merge_tolerance", "must be finite and >= 0, got %g", sc.MergeTolerance)
	}
	if !positive(sc.ResidualFactor) {
		add("scan.residual_factor", "must be finite and > 0, got %g", sc.ResidualFactor)
	}
	if sc.Workers < 1 {
		add("scan.workers", "must be >= 1, got %d", sc.Workers)
	}

	if c.Service.Timeout.Duration <= 0 {
		add("service.timeout", "must be > 0, got %s", c.Service.Timeout)
	}
	if c.Service.MaxPayloadBytes < 1 {
		add("service.max_payload_bytes", "must be >= 1, got %d", c.Service.MaxPayloadBytes)
	}
	switch c.Log.Format {
	case "auto", "json", "text":
	default:
		add("log.format", "must be one of auto, json, text, got %q", c.Log.Format)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }
