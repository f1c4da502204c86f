package expr

import "math"

// Status tags the outcome of evaluating an expression at one point.
type Status uint8

const (
	// StatusOK means Value is a finite real number.
	StatusOK Status = iota

	// StatusDomainError means an operation was applied outside its domain
	// (division by zero, log of a non-positive value, sqrt of a negative,
	// tan at an odd multiple of π/2, asin/acos outside [-1, 1]).
	StatusDomainError

	// StatusOverflow means finite operands produced ±Inf.
	StatusOverflow

	// StatusUndefined means the result is not a real number (NaN) for a
	// reason other than a recognised domain violation.
	StatusUndefined
)

var statusNames = [...]string{
	StatusOK:          "ok",
	StatusDomainError: "domain-error",
	StatusOverflow:    "overflow",
	StatusUndefined:   "undefined",
}

// String returns the stable lower-case tag name.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Result is the outcome of one evaluation. Value is meaningful only when
// Status == StatusOK; failures keep Value at NaN and record the failing
// operation in Op.
type Result struct {
	Value  float64
	Status Status
	Op     string
	X      float64
}

// Valid reports whether the result is a finite real number.
func (r Result) Valid() bool { return r.Status == StatusOK }

// Err returns nil for a valid result, otherwise an *EvalError.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &EvalError{X: r.X, Op: r.Op, Status: r.Status}
}

func ok(v float64) Result { return Result{Value: v} }

func fail(status Status, op string) Result {
	return Result{Value: math.NaN(), Status: status, Op: op}
}

// check classifies a raw float produced from finite operands.
func check(v float64, op string) Result {
	switch {
	case math.IsNaN(v):
		return fail(StatusUndefined, op)
	case math.IsInf(v, 0):
		return fail(StatusOverflow, op)
	}
	return ok(v)
}

// Func is anything that can be evaluated at a real point. *Expression
// implements it, as do the numeric derivatives in package derivative.
type Func interface {
	Eval(x float64) Result
}

// FuncOf adapts a plain Go function. Non-finite outputs are tagged
// StatusUndefined (NaN) or StatusOverflow (±Inf).
type FuncOf func(x float64) float64

// Eval implements Func.
func (f FuncOf) Eval(x float64) Result {
	r := check(f(x), "func")
	r.X = x
	return r
}
