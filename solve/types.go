package solve

import (
	"runtime"

	"github.com/katalvlaran/rootfind/derivative"
	"github.com/katalvlaran/rootfind/sample"
	"github.com/katalvlaran/rootfind/trace"
)

// Method names a root-finding method.
type Method string

const (
	Newton    Method = "newton"
	Secant    Method = "secant"
	Bisection Method = "bisection"
)

// Methods lists the supported methods.
func Methods() []Method { return []Method{Newton, Secant, Bisection} }

// Request is a solve query. Pointer fields are optional; nil selects the
// policy default.
type Request struct {
	Equation      string          `json:"equation" yaml:"equation"`
	Method        Method          `json:"method,omitempty" yaml:"method,omitempty"`
	InitialGuess  float64         `json:"initial_guess" yaml:"initial_guess"`
	X1            *float64        `json:"x1,omitempty" yaml:"x1,omitempty"`
	Tolerance     *float64        `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	MaxIterations *int            `json:"max_iterations,omitempty" yaml:"max_iterations,omitempty"`
	SearchRange   *float64        `json:"search_range,omitempty" yaml:"search_range,omitempty"`
	Subintervals  *int            `json:"num_search_points,omitempty" yaml:"num_search_points,omitempty"`
	Derivative    derivative.Mode `json:"derivative,omitempty" yaml:"derivative,omitempty"`
}

// Iteration is one trace record in response form. F and Error are nil when
// the value is not a finite number.
type Iteration struct {
	Iteration int         `json:"iteration" yaml:"iteration"`
	X         float64     `json:"x_value" yaml:"x_value"`
	Fx        *float64    `json:"f_x" yaml:"f_x"`
	FPrime    *float64    `json:"f_prime_x,omitempty" yaml:"f_prime_x,omitempty"`
	XPrev     *float64    `json:"x_prev,omitempty" yaml:"x_prev,omitempty"`
	Bracket   *[2]float64 `json:"bracket,omitempty" yaml:"bracket,omitempty"`
	Error     *float64    `json:"error" yaml:"error"`
}

// Response is the result of Solve.
type Response struct {
	Root            *float64     `json:"root" yaml:"root"`
	Roots           []float64    `json:"roots" yaml:"roots"`
	Converged       bool         `json:"converged" yaml:"converged"`
	Status          trace.Status `json:"status" yaml:"status"`
	Method          Method       `json:"method" yaml:"method"`
	Derivative      string       `json:"derivative,omitempty" yaml:"derivative,omitempty"`
	FinalError      float64      `json:"final_error" yaml:"final_error"`
	TotalError      float64      `json:"total_error" yaml:"total_error"`
	IterationsCount int          `json:"iterations_count" yaml:"iterations_count"`
	IterationsData  []Iteration  `json:"iterations_data" yaml:"iterations_data"`
	Message         string       `json:"message" yaml:"message"`
}

// EvaluateRequest asks for f at each of XValues.
type EvaluateRequest struct {
	Equation string    `json:"equation" yaml:"equation"`
	XValues  []float64 `json:"x_values" yaml:"x_values"`
}

// EvaluateResponse carries the successfully evaluated points.
type EvaluateResponse struct {
	Points  []sample.Point `json:"points" yaml:"points"`
	Success bool           `json:"success" yaml:"success"`
	Message string         `json:"message" yaml:"message"`
}

// Policy holds the numeric constants that are configuration rather than
// per-request input.
type Policy struct {
	Tolerance               float64
	MaxIterations           int
	MaxIterationsUpperBound int
	DerivativeFloor         float64
	StallFloor              float64
	DivergenceBound         float64
	HalfWidth               float64
	Subintervals            int
	MaxSubintervals         int
	MergeTolerance          float64
	ResidualFactor          float64
	Workers                 int
}

// DefaultPolicy returns the documented defaults.
func DefaultPolicy() Policy {
	return Policy{
		Tolerance:               1e-6,
		MaxIterations:           100,
		MaxIterationsUpperBound: 10_000,
		DerivativeFloor:         1e-12,
		StallFloor:              1e-12,
		DivergenceBound:         1e12,
		HalfWidth:               10,
		Subintervals:            200,
		MaxSubintervals:         10_000,
		MergeTolerance:          1e-4,
		ResidualFactor:          10,
		Workers:                 runtime.GOMAXPROCS(0),
	}
}

type options struct {
	policy   Policy
	observer trace.Observer
}

// Option configures Solve.
type Option func(*options)

// WithPolicy replaces the default policy.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithObserver receives every record of the primary run as it is produced.
func WithObserver(obs trace.Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}
