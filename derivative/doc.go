// Package derivative supplies f'(x) for the Newton solver, either exactly
// through expr.Diff or approximately through a central difference.
//
// ✨ Modes
//
//   - Symbolic (default): the derivative expression is built once and then
//     evaluated like any other Expression.
//   - Numeric: (f(x+h) - f(x-h)) / 2h with h = max(MinStep, |x|·RelStep).
//     A failure at either neighbour is reported as a domain error.
//
// Both agree to about 1e-5 relative on smooth functions.
package derivative
