// Package bisection halves a sign-change bracket [a, b] until either
// |f(c)| or the bracket width |b − a| falls below Tolerance.
//
// Overview:
//
//   - The midpoint is taken as a/2 + b/2, which stays finite for any pair of
//     finite endpoints.
//   - The error reported on each record is the width of the bracket the
//     midpoint was taken from; Bracket holds that [a, b].
//   - Endpoints may be given in either order.
//
// When to use:
//
//   - When a sign change is already known and guaranteed convergence matters
//     more than speed.
//   - For functions whose derivative is unavailable, expensive or undefined
//     at the root (abs, sqrt near zero).
//
// Key features:
//
//   - An exact zero at an endpoint converges immediately with no records.
//   - Endpoints that share a sign end the run with InvalidBracket and no
//     records.
//   - A midpoint that cannot be evaluated ends the run with DomainError.
//   - WithObserver streams every record; an observer error ends with Stopped.
//
// Performance and complexity:
//
//   - Time:  O(log2((b − a) / Tolerance)) evaluations of f.
//   - Space: one trace.Record per iteration.
//
// Error handling (sentinel errors, raised via panic by the options):
//
//   - ErrBadTolerance:     tolerance not finite or not positive.
//   - ErrBadMaxIterations: fewer than one iteration allowed.
package bisection
