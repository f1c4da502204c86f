// Package newton implements Newton-Raphson iteration for f(x) = 0.
//
// 🚀 Iteration
//
//	x_{n+1} = x_n − f(x_n) / f'(x_n)
//
// The step error |x_{n+1} − x_n| is compared against Tolerance; the residual
// |f(x_{n+1})| is recorded alongside it. Each step appends one trace.Record.
//
// ⚙️ Terminal statuses
//
//   - Converged:             step error below Tolerance.
//   - DerivativeNearZero:    |f'(x_n)| below DerivativeFloor, checked before dividing.
//   - Diverged:              the next iterate is non-finite or beyond DivergenceBound,
//     or f / f' overflowed.
//   - DomainError:           f or f' could not be evaluated at x_n.
//   - MaxIterationsExceeded: MaxIterations steps without convergence.
//   - Stopped:               the OnIteration observer returned an error.
//
// A guard that trips before any update still records the current point, so
// x**2 started at 0 yields exactly one record with DerivativeNearZero.
//
// ⏱ Complexity
//
// One evaluation of f and f' per step. Near a simple root the error roughly
// squares each step; at a multiple root convergence drops to linear.
//
// ❗ Option errors
//
// ErrBadTolerance, ErrBadMaxIterations, ErrBadDerivativeFloor and
// ErrBadDivergenceBound are raised via panic when the matching option is
// applied with an invalid value. Options.Validate returns them instead.
//
// ✨ Example
//
//	f := expr.MustCompile("x**2 - 4")
//	out := newton.Solve(f, expr.Diff(f), 1, newton.WithTolerance(1e-10))
//	fmt.Println(out.Status, out.Root) // converged 2
package newton
