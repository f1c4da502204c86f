package expr

// Node is one vertex of a compiled expression tree. The set of node types
// is closed: Number, Constant, Variable, Unary, Binary and Call.
type Node interface {
	isNode()
}

// Op identifies a unary or binary operator.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpNeg
)

var opSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpPow: "**",
	OpNeg: "-",
}

// String returns the operator's source symbol.
func (o Op) String() string { return opSymbols[o] }

type (
	// Number is a numeric literal or a folded constant.
	Number struct{ Value float64 }

	// Constant is a named constant such as pi or e.
	Constant struct {
		Name  string
		Value float64
	}

	// Variable is the free variable x.
	Variable struct{}

	// Unary is a prefix operator; the only one is OpNeg.
	Unary struct {
		Op  Op
		Arg Node
	}

	// Binary is an infix operator application.
	Binary struct {
		Op          Op
		Left, Right Node
	}

	// Call applies a named function to a single argument.
	Call struct {
		Fn  string
		Arg Node
	}
)

func (Number) isNode()   {}
func (Constant) isNode() {}
func (Variable) isNode() {}
func (Unary) isNode()    {}
func (Binary) isNode()   {}
func (Call) isNode()     {}

// Expression is an immutable compiled formula over x.
type Expression struct {
	src  string
	root Node
}

// Source returns the text the expression was compiled from. Expressions
// produced by Diff carry their printed form.
func (e *Expression) Source() string { return e.src }

// Root returns the tree root. Nodes are values; callers cannot mutate the
// expression through them.
func (e *Expression) Root() Node { return e.root }

// String returns the canonical printed form.
func (e *Expression) String() string { return format(e.root) }

// Eval evaluates the expression at x. It never panics.
func (e *Expression) Eval(x float64) Result {
	r := eval(e.root, x)
	r.X = x
	return r
}

// DependsOnX reports whether x occurs anywhere in the expression.
func (e *Expression) DependsOnX() bool { return hasVar(e.root) }

func hasVar(n Node) bool {
	switch n := n.(type) {
	case Variable:
		return true
	case Unary:
		return hasVar(n.Arg)
	case Binary:
		return hasVar(n.Left) || hasVar(n.Right)
	case Call:
		return hasVar(n.Arg)
	}
	return false
}
