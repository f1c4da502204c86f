package secant

import (
	"math"

	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/trace"
)

// Solve runs the secant method on f from x0 and x1.
func Solve(f expr.Func, x0, x1 float64, opts ...Option) trace.Outcome {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	run := trace.NewRun(min(o.MaxIterations, 64), o.OnIteration)

	if !inBounds(x0, o.DivergenceBound) || !inBounds(x1, o.DivergenceBound) {
		return run.Finish(trace.Diverged, 0)
	}

	f0 := f.Eval(x0)
	if !f0.Valid() {
		run.Append(trace.Record{X: x0, Fx: f0.Value, Next: math.NaN(), Error: math.NaN(), Residual: math.NaN()})
		return run.Finish(failure(f0), 0)
	}
	f1 := f.Eval(x1)

	for i := 0; i < o.MaxIterations; i++ {
		rec := trace.Record{
			X:        x1,
			XPrev:    trace.Ptr(x0),
			Fx:       f1.Value,
			Next:     math.NaN(),
			Error:    math.NaN(),
			Residual: math.NaN(),
		}
		if !f1.Valid() {
			run.Append(rec)
			return run.Finish(failure(f1), 0)
		}

		df := f1.Value - f0.Value
		if math.Abs(df) < o.StallFloor {
			run.Append(rec)
			return run.Finish(trace.StalledBrackets, 0)
		}

		next := x1 - f1.Value*(x1-x0)/df
		rec.Next = next
		rec.Error = math.Abs(next - x1)
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
		x0, f0 = x1, f1
		x1, f1 = next, fn
	}
	return run.Finish(trace.MaxIterationsExceeded, 0)
}

func inBounds(x, bound float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && math.Abs(x) <= bound
}

func failure(r expr.Result) trace.Status {
	if r.Status == expr.StatusOverflow {
		return trace.Diverged
	}
	return trace.DomainError
}
