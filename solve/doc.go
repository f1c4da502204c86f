// Package solve is the request-level entry point: it validates a Request,
// compiles the equation, runs the chosen method from the caller's starting
// point(s), scans the surrounding window for every other root and shapes
// the result as a Response.
//
// 🚀 Operations
//
//   - Solve:     full root finding with a replayable iteration trace.
//   - Evaluate:  sample an equation at caller-chosen points for charting.
//   - Functions: the catalog of supported functions, constants and examples.
//
// ⚙️ Errors
//
// Solve returns an error only for input that fails validation (a
// *ValidationError or the compiler's *expr.ParseError) or when ctx ends
// during the scan. Every numerical failure is a Status in the Response.
// Evaluate never returns an error; failures are reported in the response.
//
// Validation sentinels, each wrapped in a *ValidationError naming the field:
//
//   - ErrEmptyEquation, ErrUnknownMethod
//   - ErrInvalidTolerance, ErrInvalidMaxIterations
//   - ErrNonFiniteInput, ErrMissingSecondPoint, ErrIdenticalPoints
//   - ErrInvalidSearchRange, ErrInvalidSubintervals
//   - ErrInvalidWindow: the search window around the starting point
//     overflows, or is too narrow to hold two distinct floats (x0 = 1e20
//     with the default half-width of 10).
//
// 🔎 Root and Roots
//
// Root is the primary run's root when it converged, otherwise the scanned
// root nearest the initial guess. Roots lists only roots that passed the
// residual check. A converged Root that failed it is kept, and Message
// says it is not listed.
package solve
