package bisection

import (
	"errors"
	"math"

	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/trace"
)

var (
	ErrBadTolerance     = errors.New("bisection: tolerance must be finite and > 0")
	ErrBadMaxIterations = errors.New("bisection: max iterations must be >= 1")
)

// Options configures a bisection run.
type Options struct {
	Tolerance     float64
	MaxIterations int
	OnIteration   trace.Observer
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns ε = 1e-6 and 100 iterations.
func DefaultOptions() Options {
	return Options{Tolerance: 1e-6, MaxIterations: 100}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	switch {
	case !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0):
		return ErrBadTolerance
	case o.MaxIterations < 1:
		return ErrBadMaxIterations
	}
	return nil
}

// WithTolerance sets ε. A run converges when |f(c)| or the bracket width
// drops below it.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 0) {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = eps
	}
}

// WithMaxIterations caps the number of halvings.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithObserver streams each record to obs.
func WithObserver(obs trace.Observer) Option {
	return func(o *Options) {
		o.OnIteration = obs
	}
}

// Solve bisects [a, b]; the endpoints may be given in either order.
func Solve(f expr.Func, a, b float64, opts ...Option) trace.Outcome {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	run := trace.NewRun(min(o.MaxIterations, 64), o.OnIteration)
	if a > b {
		a, b = b, a
	}

	fa, fb := f.Eval(a), f.Eval(b)
	switch {
	case !fa.Valid() || !fb.Valid():
		return run.Finish(trace.DomainError, 0)
	case fa.Value == 0:
		return run.Finish(trace.Converged, a)
	case fb.Value == 0:
		return run.Finish(trace.Converged, b)
	case (fa.Value > 0) == (fb.Value > 0):
		return run.Finish(trace.InvalidBracket, 0)
	}

	for i := 0; i < o.MaxIterations; i++ {
		c := a/2 + b/2
		fc := f.Eval(c)
		rec := trace.Record{
			X:        c,
			Bracket:  &[2]float64{a, b},
			Fx:       fc.Value,
			Next:     c,
			Error:    b - a,
			Residual: math.Abs(fc.Value),
		}
		if !fc.Valid() {
			rec.Residual = math.NaN()
			run.Append(rec)
			return run.Finish(trace.DomainError, 0)
		}
		more := run.Append(rec)
		if math.Abs(fc.Value) < o.Tolerance || rec.Error < o.Tolerance {
			return run.Finish(trace.Converged, c)
		}
		if !more {
			return run.Finish(trace.Stopped, 0)
		}
		if (fa.Value > 0) != (fc.Value > 0) {
			b = c
		} else {
			a, fa = c, fc
		}
	}
	return run.Finish(trace.MaxIterationsExceeded, 0)
}
