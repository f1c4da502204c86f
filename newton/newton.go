package newton

import (
	"math"

	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/trace"
)

// Solve runs Newton-Raphson on f with derivative df from x0. It never
// returns an error: every failure is a terminal trace.Status.
func Solve(f, df expr.Func, x0 float64, opts ...Option) trace.Outcome {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	run := trace.NewRun(min(o.MaxIterations, 64), o.OnIteration)

	if !inBounds(x0, o.DivergenceBound) {
		return run.Finish(trace.Diverged, 0)
	}

	x, fx := x0, f.Eval(x0)
	for i := 0; i < o.MaxIterations; i++ {
		rec := trace.Record{X: x, Fx: fx.Value, Next: math.NaN(), Error: math.NaN(), Residual: math.NaN()}
		if !fx.Valid() {
			run.Append(rec)
			return run.Finish(failure(fx), 0)
		}

		d := df.Eval(x)
		if !d.Valid() {
			run.Append(rec)
			return run.Finish(failure(d), 0)
		}
		rec.FPrime = trace.Ptr(d.Value)
		if math.Abs(d.Value) < o.DerivativeFloor {
			run.Append(rec)
			return run.Finish(trace.DerivativeNearZero, 0)
		}

		next := x - fx.Value/d.Value
		rec.Next = next
		rec.Error = math.Abs(next - x)
		if !inBounds(next, o.DivergenceBound) {
			run.Append(rec)
			return run.Finish(trace.Diverged, 0)
		}

		fn := f.Eval(next)
		if fn.Valid() {
			rec.Residual = math.Abs(fn.Value)
		}
		more := run.Append(rec)
		if rec.Error < o.Tolerance {
			return run.Finish(trace.Converged, next)
		}
		if !more {
			return run.Finish(trace.Stopped, 0)
		}
		x, fx = next, fn
	}
	return run.Finish(trace.MaxIterationsExceeded, 0)
}

func inBounds(x, bound float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && math.Abs(x) <= bound
}

// failure maps a failed evaluation to a run status: overflow means the
// iterates ran away, anything else is a domain problem.
func failure(r expr.Result) trace.Status {
	if r.Status == expr.StatusOverflow {
		return trace.Diverged
	}
	return trace.DomainError
}
