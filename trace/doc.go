// Package trace holds the iteration record shared by every solver.
//
// 🚀 What it gives you
//
//   - Record: one step of a run (point, function value, optional derivative,
//     proposed next iterate, step error, residual).
//   - Status: the run state machine, Running until a terminal status is set.
//   - Outcome: the terminal status, the root when converged, and the
//     append-only record list.
//   - Run: a small builder the solvers use to append records and notify an
//     optional Observer after each step.
//
// ⚙️ Invariants
//
// Iteration numbers start at 1 and increase by one. Only the final record
// carries a terminal status; all earlier ones are Running. Records are never
// rewritten once an Observer has seen them, except for the status of the
// last one when the run terminates on it.
package trace
