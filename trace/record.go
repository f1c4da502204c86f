package trace

import "math"

// Record is one solver step. Optional fields are nil when the method does
// not produce them: FPrime is Newton only, XPrev is the second point of
// Secant and bisection, Bracket is the bisection interval.
type Record struct {
	Iteration int
	X         float64
	XPrev     *float64
	Bracket   *[2]float64
	Fx        float64
	FPrime    *float64
	Next      float64
	Error     float64
	Residual  float64
	Status    Status
}

// Outcome is the result of one solver run.
type Outcome struct {
	Status Status
	// Root is meaningful only when HasRoot is true.
	Root    float64
	HasRoot bool
	// FinalError is the step error of the last record with a finite one.
	FinalError float64
	Records    []Record
}

// Converged reports whether the run converged.
func (o Outcome) Converged() bool { return o.Status == Converged }

// Iterations returns the number of recorded steps.
func (o Outcome) Iterations() int { return len(o.Records) }

// Last returns the final record and false if the trace is empty.
func (o Outcome) Last() (Record, bool) {
	if len(o.Records) == 0 {
		return Record{}, false
	}
	return o.Records[len(o.Records)-1], true
}

// Ptr returns a pointer to a copy of v, for the optional Record fields.
func Ptr(v float64) *float64 { return &v }

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
