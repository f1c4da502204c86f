// Package secant implements the derivative-free secant iteration
//
//	x_{n+1} = x_n − f(x_n)·(x_n − x_{n−1}) / (f(x_n) − f(x_{n−1}))
//
// started from two distinct points.
//
// When to use:
//
//   - When f' is unavailable or costly and two nearby starting points are
//     known. Convergence is superlinear (order ≈ 1.618) near a simple root.
//
// Key features:
//
//   - Records carry both points (X and XPrev).
//   - StalledBrackets ends the run when |f(x_n) − f(x_{n−1})| falls below
//     StallFloor, checked before dividing.
//   - Diverged, DomainError, MaxIterationsExceeded and Stopped behave as in
//     package newton.
//
// Performance and complexity:
//
//   - One new evaluation of f per iteration; O(MaxIterations) records.
//
// Error handling (sentinel errors):
//
//   - ErrIdenticalPoints: returned by CheckPoints when x0 == x1.
//   - ErrBadTolerance, ErrBadMaxIterations, ErrBadStallFloor,
//     ErrBadDivergenceBound: raised via panic when the matching With*
//     option is applied with an invalid value.
package secant
