package expr

import "math"

// Diff returns the exact derivative d/dx of e. The result is simplified
// with constant folding and 0/1 identities; its Source is its printed form.
func Diff(e *Expression) *Expression {
	root := d(e.root)
	return &Expression{src: format(root), root: root}
}

func d(n Node) Node {
	switch n := n.(type) {
	case Number, Constant:
		return Number{0}
	case Variable:
		return Number{1}
	case Unary:
		return neg(d(n.Arg))
	case Binary:
		return dBinary(n)
	case Call:
		rule, known := derivatives[n.Fn]
		if !known {
			return Number{math.NaN()}
		}
		return mul(rule(n.Arg), d(n.Arg))
	}
	return Number{math.NaN()}
}

func dBinary(n Binary) Node {
	u, v := n.Left, n.Right
	switch n.Op {
	case OpAdd:
		return add(d(u), d(v))
	case OpSub:
		return sub(d(u), d(v))
	case OpMul:
		return add(mul(d(u), v), mul(u, d(v)))
	case OpDiv:
		return div(sub(mul(d(u), v), mul(u, d(v))), pow(v, Number{2}))
	case OpPow:
		switch {
		case !hasVar(v):
			// v·u^(v-1)·u'
			return mul(mul(v, pow(u, sub(v, Number{1}))), d(u))
		case !hasVar(u):
			// u^v·ln(u)·v'
			return mul(mul(n, Call{Fn: "ln", Arg: u}), d(v))
		}
		// u^v·(v'·ln(u) + v·u'/u)
		return mul(n, add(mul(d(v), Call{Fn: "ln", Arg: u}), div(mul(v, d(u)), u)))
	}
	return Number{math.NaN()}
}

func number(n Node) (float64, bool) {
	if c, isNum := n.(Number); isNum {
		return c.Value, true
	}
	return 0, false
}

func is(n Node, v float64) bool {
	c, isNum := number(n)
	return isNum && c == v
}

// fold evaluates a binary node over two literals when the outcome is a
// finite number.
func fold(op Op, a, b Node) (Node, bool) {
	_, okA := number(a)
	_, okB := number(b)
	if !okA || !okB {
		return nil, false
	}
	r := evalBinary(Binary{Op: op, Left: a, Right: b}, 0)
	if !r.Valid() {
		return nil, false
	}
	return Number{r.Value}, true
}

func add(a, b Node) Node {
	if f, folded := fold(OpAdd, a, b); folded {
		return f
	}
	switch {
	case is(a, 0):
		return b
	case is(b, 0):
		return a
	}
	return Binary{Op: OpAdd, Left: a, Right: b}
}

func sub(a, b Node) Node {
	if f, folded := fold(OpSub, a, b); folded {
		return f
	}
	switch {
	case is(b, 0):
		return a
	case is(a, 0):
		return neg(b)
	}
	return Binary{Op: OpSub, Left: a, Right: b}
}

func mul(a, b Node) Node {
	if f, folded := fold(OpMul, a, b); folded {
		return f
	}
	switch {
	case is(a, 0) || is(b, 0):
		return Number{0}
	case is(a, 1):
		return b
	case is(b, 1):
		return a
	case is(a, -1):
		return neg(b)
	case is(b, -1):
		return neg(a)
	}
	return Binary{Op: OpMul, Left: a, Right: b}
}

func div(a, b Node) Node {
	if f, folded := fold(OpDiv, a, b); folded {
		return f
	}
	switch {
	case is(b, 1):
		return a
	case is(a, 0) && !is(b, 0):
		return Number{0}
	}
	return Binary{Op: OpDiv, Left: a, Right: b}
}

func pow(a, b Node) Node {
	if f, folded := fold(OpPow, a, b); folded {
		return f
	}
	switch {
	case is(b, 1):
		return a
	case is(b, 0):
		return Number{1}
	}
	return Binary{Op: OpPow, Left: a, Right: b}
}

func neg(a Node) Node {
	switch a := a.(type) {
	case Number:
		if a.Value == 0 {
			return Number{0}
		}
		return Number{-a.Value}
	case Unary:
		if a.Op == OpNeg {
			return a.Arg
		}
	}
	return Unary{Op: OpNeg, Arg: a}
}
