package expr

import (
	"strconv"
	"strings"
)

const (
	precSum = 1 + iota
	precProduct
	precPrefix
	precPower
	precAtom
)

func precedence(n Node) int {
	switch n := n.(type) {
	case Number:
		if n.Value < 0 {
			return precPrefix
		}
	case Unary:
		return precPrefix
	case Binary:
		switch n.Op {
		case OpAdd, OpSub:
			return precSum
		case OpMul, OpDiv:
			return precProduct
		case OpPow:
			return precPower
		}
	}
	return precAtom
}

// format prints n in a form Compile accepts and that evaluates to the same
// values.
func format(n Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func write(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case Number:
		sb.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case Constant:
		sb.WriteString(n.Name)
	case Variable:
		sb.WriteByte('x')
	case Unary:
		sb.WriteByte('-')
		child(sb, n.Arg, precedence(n.Arg) < precPrefix)
	case Call:
		sb.WriteString(n.Fn)
		sb.WriteByte('(')
		write(sb, n.Arg)
		sb.WriteByte(')')
	case Binary:
		var wrapL, wrapR bool
		lp, rp := precedence(n.Left), precedence(n.Right)
		switch n.Op {
		case OpAdd, OpSub:
			wrapL, wrapR = lp < precSum, rp <= precSum
		case OpMul, OpDiv:
			wrapL, wrapR = lp < precProduct, rp <= precProduct
		case OpPow:
			wrapL, wrapR = lp <= precPower, rp < precPrefix
		}
		child(sb, n.Left, wrapL)
		sb.WriteByte(' ')
		sb.WriteString(n.Op.String())
		sb.WriteByte(' ')
		child(sb, n.Right, wrapR)
	}
}

func child(sb *strings.Builder, n Node, paren bool) {
	if paren {
		sb.WriteByte('(')
	}
	write(sb, n)
	if paren {
		sb.WriteByte(')')
	}
}
