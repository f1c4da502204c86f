// Package expr compiles single-variable real formulas into an immutable,
// evaluable and differentiable expression tree.
//
// 🚀 What is it for?
//
//	Root finders, samplers and plotters need f(x) for a formula typed by a
//	user. expr turns "x**3 - 2*x - 5" into a tree of tagged nodes (Number,
//	Constant, Variable, Unary, Binary, Call) and evaluates it by recursive
//	dispatch. No host-language code is generated or executed.
//
// ✨ Key features:
//   - grammar: + - * / ** (alias ^), unary minus, parentheses, literals,
//     the variable x, constants pi and e, and the functions
//     sin cos tan exp log ln sqrt abs asin acos atan sinh cosh tanh log10 log2
//   - -x**2 parses as -(x**2); ** is right-associative; 2**-1 is legal
//   - implicit multiplication (3x, )x, 2(x), x x) is a hard parse error
//   - evaluation never panics: division by zero, log of non-positive values,
//     sqrt of negatives and tan at odd multiples of π/2 come back as tagged
//     Results (StatusDomainError, StatusOverflow, StatusUndefined)
//   - exact symbolic derivative via Diff, with light simplification
//   - canonical printing: Compile(e.String()) evaluates identically to e
//
// ⚙️ Usage:
//
//	e, err := expr.Compile("x**2 - 4")
//	if err != nil {
//	    var pe *expr.ParseError
//	    if errors.As(err, &pe) { /* pe.Pos, pe.Token */ }
//	}
//	r := e.Eval(3)          // r.Value == 5, r.Status == expr.StatusOK
//	d := expr.Diff(e)       // 2*x
//
// An *Expression is immutable after Compile and safe for concurrent use.
package expr
