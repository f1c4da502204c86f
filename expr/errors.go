package expr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Compile wraps the parse sentinels in a *ParseError;
// Result.Err wraps the evaluation sentinels in an *EvalError. Match both
// with errors.Is.
var (
	// ErrEmptyExpression is returned for an empty or blank formula.
	ErrEmptyExpression = errors.New("expr: empty expression")

	// ErrUnexpectedToken indicates a token that cannot appear at its position.
	ErrUnexpectedToken = errors.New("expr: unexpected token")

	// ErrUnknownIdentifier indicates a name that is neither x, a constant nor a function.
	ErrUnknownIdentifier = errors.New("expr: unknown identifier")

	// ErrUnbalancedParens indicates a missing '(' or ')'.
	ErrUnbalancedParens = errors.New("expr: unbalanced parentheses")

	// ErrImplicitMultiplication rejects juxtaposed operands such as 3x or )(.
	ErrImplicitMultiplication = errors.New("expr: implicit multiplication is not allowed; use '*'")

	// ErrBadNumber indicates a malformed numeric literal (e.g. 1.2.3).
	ErrBadNumber = errors.New("expr: malformed number")

	// ErrDomain indicates evaluation outside the mathematical domain of an operation.
	ErrDomain = errors.New("expr: domain error")

	// ErrOverflow indicates a finite input produced an infinite result.
	ErrOverflow = errors.New("expr: overflow")

	// ErrUndefined indicates a result that is not a real number (NaN).
	ErrUndefined = errors.New("expr: undefined")
)

// ParseError reports where compilation failed. Pos is the 0-based byte
// offset of the offending token inside the source; Token is its text
// ("end of input" at EOF).
type ParseError struct {
	Pos   int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", e.Err, e.Token, e.Pos+1)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EvalError describes a failed evaluation at a specific point.
type EvalError struct {
	X      float64
	Op     string
	Status Status
}

func (e *EvalError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%v at x=%g", e.Unwrap(), e.X)
	}
	return fmt.Sprintf("%v in %s at x=%g", e.Unwrap(), e.Op, e.X)
}

func (e *EvalError) Unwrap() error {
	switch e.Status {
	case StatusOverflow:
		return ErrOverflow
	case StatusUndefined:
		return ErrUndefined
	default:
		return ErrDomain
	}
}
