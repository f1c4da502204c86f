package scan

import (
	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/newton"
	"github.com/katalvlaran/rootfind/secant"
	"github.com/katalvlaran/rootfind/trace"
)

// Runner refines one bracket. start is the bracket midpoint, or the
// caller's guess when it lies inside the bracket.
type Runner interface {
	Run(f expr.Func, b Bracket, start float64) trace.Outcome
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(f expr.Func, b Bracket, start float64) trace.Outcome

// Run implements Runner.
func (fn RunnerFunc) Run(f expr.Func, b Bracket, start float64) trace.Outcome {
	return fn(f, b, start)
}

// NewtonRunner refines from start using the derivative df.
func NewtonRunner(df expr.Func, opts ...newton.Option) Runner {
	return RunnerFunc(func(f expr.Func, _ Bracket, start float64) trace.Outcome {
		return newton.Solve(f, df, start, opts...)
	})
}

// SecantRunner refines from the two bracket ends.
func SecantRunner(opts ...secant.Option) Runner {
	return RunnerFunc(func(f expr.Func, b Bracket, _ float64) trace.Outcome {
		return secant.Solve(f, b.Lo, b.Hi, opts...)
	})
}

// BisectionRunner halves the bracket.
func BisectionRunner(opts ...bisection.Option) Runner {
	return RunnerFunc(func(f expr.Func, b Bracket, _ float64) trace.Outcome {
		return bisection.Solve(f, b.Lo, b.Hi, opts...)
	})
}
