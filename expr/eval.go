package expr

import "math"

func eval(n Node, x float64) Result {
	switch n := n.(type) {
	case Number:
		return ok(n.Value)
	case Constant:
		return ok(n.Value)
	case Variable:
		switch {
		case math.IsNaN(x):
			return fail(StatusUndefined, "x")
		case math.IsInf(x, 0):
			return fail(StatusOverflow, "x")
		}
		return ok(x)
	case Unary:
		r := eval(n.Arg, x)
		if !r.Valid() {
			return r
		}
		return ok(-r.Value)
	case Binary:
		return evalBinary(n, x)
	case Call:
		r := eval(n.Arg, x)
		if !r.Valid() {
			return r
		}
		fn, known := functions[n.Fn]
		if !known {
			return fail(StatusUndefined, n.Fn)
		}
		return fn(r.Value)
	}
	return fail(StatusUndefined, "node")
}

func evalBinary(n Binary, x float64) Result {
	l := eval(n.Left, x)
	if !l.Valid() {
		return l
	}
	r := eval(n.Right, x)
	if !r.Valid() {
		return r
	}
	a, b := l.Value, r.Value
	switch n.Op {
	case OpAdd:
		return check(a+b, "+")
	case OpSub:
		return check(a-b, "-")
	case OpMul:
		return check(a*b, "*")
	case OpDiv:
		if b == 0 {
			return fail(StatusDomainError, "/")
		}
		return check(a/b, "/")
	case OpPow:
		return evalPow(a, b)
	}
	return fail(StatusUndefined, n.Op.String())
}

func evalPow(a, b float64) Result {
	switch {
	case a == 0 && b < 0:
		return fail(StatusDomainError, "**")
	case a < 0 && b != math.Trunc(b):
		return fail(StatusDomainError, "**")
	}
	return check(math.Pow(a, b), "**")
}
