// Package scan finds every root of f inside a window by sampling for sign
// changes and refining each bracket with a solver.
//
// 🚀 Pipeline
//
//  1. Sample f at Subintervals+1 evenly spaced points over the window.
//  2. Every strict sign change between two valid neighbours becomes a
//     Bracket; an exact zero sample becomes an Exact bracket. Failed samples
//     are skipped, so no bracket spans them.
//  3. Each bracket is refined concurrently by a Runner (Newton, Secant or
//     bisection) on an errgroup with a bounded worker limit.
//  4. Converged roots that pass the residual and window checks are sorted
//     and merged when closer than MergeTolerance.
//
// ⚙️ Concurrency
//
// The compiled function is shared read-only. Each bracket owns its trace
// and writes its outcome into a pre-sized slice by index. Context
// cancellation stops dispatching new brackets; runs already started finish.
//
// ⏱ Complexity
//
// Subintervals+1 evaluations to find brackets, then one refining run per
// bracket. With W workers the refinement wall time is about
// ceil(brackets / W) runs.
//
// ❗ Acceptance
//
// A converged run is kept only when |f(root)| ≤ ResidualLimit. A non-seed
// root must also lie in the window. The caller's seed run is exempt from the
// window check but not from the residual check, so a seed that converged on
// step size alone may be absent from Roots; PrimaryFromSeed is then false.
//
// Option errors (panics from With*, values from Options.Validate):
// ErrBadWindow, ErrBadSubintervals, ErrBadMergeTolerance, ErrBadWorkers,
// ErrBadResidualLimit and ErrNilRunner.
package scan
