// Package rootfind is a numerical root-finding engine for equations in one
// variable: compile an infix expression in x, pick a method, and get back
// the root, every root near it, and a full per-iteration trace.
//
// 🚀 What is rootfind?
//
//	A small stack of focused packages:
//		• expr       – tokenizer, recursive-descent parser, evaluator, symbolic d/dx
//		• derivative – symbolic or central-difference derivative selection
//		• sample     – grids and point-wise evaluation
//		• newton     – Newton-Raphson with derivative-floor and divergence guards
//		• secant     – two-point secant with stall detection
//		• bisection  – guaranteed bracketing fallback
//		• scan       – sign-change bracketing over a window, concurrent refinement, dedup
//		• trace      – per-iteration records and terminal statuses shared by all solvers
//		• solve      – request validation, method dispatch and response assembly
//
// ✨ Why rootfind?
//
//   - Numerical failures are statuses, never panics: domain errors, overflow,
//     flat derivatives and divergence all end a run with a named Status.
//   - Every run is observable: an Observer sees each iteration as it happens.
//   - Explicit grammar: "2x" is rejected, "2*x" is required; "^" is "**".
//
// ⚙️ Quick example:
//
//	resp, err := solve.Solve(ctx, solve.Request{Equation: "x**2 - 4", InitialGuess: 1})
//	// resp.Root ≈ 2, resp.Roots = [-2, 2], resp.Status = converged
//
// The cmd/rootfind command wraps the same engine with TOML configuration,
// JSON/YAML request documents, structured logging and OpenTelemetry.
//
//	go install github.com/katalvlaran/rootfind/cmd/rootfind@latest
package rootfind
