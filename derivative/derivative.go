package derivative

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/expr"
)

// Func is a derivative that can be evaluated at a point.
type Func = expr.Func

// Mode selects how the derivative is produced.
type Mode uint8

const (
	Symbolic Mode = iota
	Numeric
)

// ErrUnknownMode is returned when parsing an unrecognised mode name.
var ErrUnknownMode = errors.New("derivative: unknown mode")

var modeNames = [...]string{Symbolic: "symbolic", Numeric: "numeric"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if int(m) >= len(modeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The empty string
// selects Symbolic.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "symbolic":
		*m = Symbolic
	case "numeric":
		*m = Numeric
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, text)
	}
	return nil
}

// Options tune the numeric difference.
type Options struct {
	MinStep float64
	RelStep float64
}

// DefaultOptions returns MinStep = RelStep = 1e-6.
func DefaultOptions() Options {
	return Options{MinStep: 1e-6, RelStep: 1e-6}
}

// SymbolicOf wraps expr.Diff. The returned value is an *expr.Expression, so
// callers can print it.
func SymbolicOf(e *expr.Expression) *expr.Expression { return expr.Diff(e) }

type numeric struct {
	f    expr.Func
	opts Options
}

// NumericOf returns a central-difference derivative of f.
func NumericOf(f expr.Func, opts Options) Func {
	if opts.MinStep <= 0 || opts.RelStep < 0 {
		opts = DefaultOptions()
	}
	return numeric{f: f, opts: opts}
}

func (n numeric) Eval(x float64) expr.Result {
	h := math.Max(n.opts.MinStep, math.Abs(x)*n.opts.RelStep)
	hi, lo := n.f.Eval(x+h), n.f.Eval(x-h)
	if !hi.Valid() || !lo.Valid() {
		return expr.Result{Value: math.NaN(), Status: expr.StatusDomainError, Op: "d/dx", X: x}
	}
	v := (hi.Value - lo.Value) / (2 * h)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return expr.Result{Value: math.NaN(), Status: expr.StatusOverflow, Op: "d/dx", X: x}
	}
	return expr.Result{Value: v, X: x}
}

// New returns the derivative of e in the requested mode.
func New(e *expr.Expression, mode Mode) Func {
	if mode == Numeric {
		return NumericOf(e, DefaultOptions())
	}
	return SymbolicOf(e)
}

// Describe returns a printable form of d: the symbolic expression, or a
// note for the numeric approximation.
func Describe(d Func) string {
	if e, ok := d.(*expr.Expression); ok {
		return e.String()
	}
	return "central difference"
}
