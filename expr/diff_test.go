package expr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func central(e *expr.Expression, x float64) float64 {
	h := 1e-6 * math.Max(1, math.Abs(x))
	return (e.Eval(x+h).Value - e.Eval(x-h).Value) / (2 * h)
}

// TestDiff_MatchesCentralDifference checks every rule against a numeric
// derivative at a few interior points.
func TestDiff_MatchesCentralDifference(t *testing.T) {
	srcs := []string{
		"x**2 - 4",
		"x**3 - 2*x - 5",
		"3*x**4 - x/2 + 7",
		"(x + 1) * (x - 2)",
		"x / (x**2 + 1)",
		"2**x",
		"x**x",
		"sqrt(x)",
		"sin(x) - 0.5",
		"cos(x) - x",
		"tan(x) - x",
		"exp(x) - 2",
		"log(x) - 1",
		"ln(x**2)",
		"log10(x)",
		"log2(x)",
		"abs(x - 1)",
		"asin(x / 4)",
		"acos(x / 4)",
		"atan(x)",
		"sinh(x) + cosh(x) - tanh(x)",
		"-exp(-x**2)",
		"pi * x + e",
	}
	for _, src := range srcs {
		e := expr.MustCompile(src)
		de := expr.Diff(e)
		for _, x := range []float64{0.3, 1.1, 2.6} {
			got := de.Eval(x)
			require.True(t, got.Valid(), "d/dx %q at %v: %v (%s)", src, x, got.Err(), de)
			want := central(e, x)
			assert.InDelta(t, want, got.Value, 1e-5*math.Max(1, math.Abs(want)),
				"d/dx %q at %v, derivative %s", src, x, de)
		}
	}
}

// TestDiff_Simplifies pins the printed form of a few derivatives so the
// trace stays readable.
func TestDiff_Simplifies(t *testing.T) {
	cases := map[string]string{
		"x**2 - 4":   "2 * x",
		"x":          "1",
		"5":          "0",
		"3*x":        "3",
		"sin(x)":     "cos(x)",
		"cos(x)":     "-sin(x)",
		"exp(2*x)":   "exp(2 * x) * 2",
		"x**3":       "3 * x ** 2",
		"-x":         "-1",
		"x + pi":     "1",
		"log(x) - 1": "1 / x",
	}
	for src, want := range cases {
		assert.Equal(t, want, expr.Diff(expr.MustCompile(src)).String(), "d/dx %q", src)
	}
}

// TestDiff_SourceIsPrinted verifies a derivative reparses to itself.
func TestDiff_SourceIsPrinted(t *testing.T) {
	de := expr.Diff(expr.MustCompile("x**3 - 2*x - 5"))
	assert.Equal(t, de.String(), de.Source())
	_, err := expr.Compile(de.Source())
	assert.NoError(t, err)
}

// TestDiff_AbsAtZero is undefined at the kink.
func TestDiff_AbsAtZero(t *testing.T) {
	de := expr.Diff(expr.MustCompile("abs(x)"))
	assert.Equal(t, expr.StatusDomainError, de.Eval(0).Status)
	assert.Equal(t, 1.0, de.Eval(2).Value)
	assert.Equal(t, -1.0, de.Eval(-2).Value)
}

// TestDiff_EveryFunctionHasRule differentiates each registered function and
// evaluates both the function and its derivative inside their domains.
func TestDiff_EveryFunctionHasRule(t *testing.T) {
	const at = 0.5
	for _, name := range expr.Functions() {
		e := expr.MustCompile(name + "(x)")
		de := expr.Diff(e)
		assert.NotContains(t, de.String(), "NaN", "%s must have a derivative rule", name)
		assert.True(t, e.Eval(at).Valid(), "%s must evaluate at %g", name, at)
		r := de.Eval(at)
		require.True(t, r.Valid(), "d/dx %s must evaluate at %g", name, at)
		assert.InDelta(t, central(e, at), r.Value, 1e-5, "d/dx %s at %g", name, at)
	}
}
