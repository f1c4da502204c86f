package solve_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/derivative"
	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/solve"
	"github.com/katalvlaran/rootfind/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int         { return &v }

// TestSolve_NewtonQuadratic is the canonical success path.
func TestSolve_NewtonQuadratic(t *testing.T) {
	resp, err := solve.Solve(context.Background(), solve.Request{Equation: "x**2 - 4", InitialGuess: 1})
	require.NoError(t, err)

	assert.True(t, resp.Converged)
	assert.Equal(t, trace.Converged, resp.Status)
	assert.Equal(t, solve.Newton, resp.Method)
	require.NotNil(t, resp.Root)
	assert.InDelta(t, 2.0, *resp.Root, 1e-6)
	require.Len(t, resp.Roots, 2)
	assert.InDelta(t, -2.0, resp.Roots[0], 1e-6)
	assert.InDelta(t, 2.0, resp.Roots[1], 1e-6)
	assert.Equal(t, 5, resp.IterationsCount)
	assert.Len(t, resp.IterationsData, 5)
	assert.Equal(t, resp.FinalError, resp.TotalError)
	assert.Equal(t, "2 * x", resp.Derivative)
	assert.Contains(t, resp.Message, "Converged to root")
	assert.Contains(t, resp.Message, "found 2 root(s) in the search range")

	first := resp.IterationsData[0]
	assert.Equal(t, 1, first.Iteration)
	assert.Equal(t, 1.0, first.X)
	assert.Equal(t, -3.0, *first.Fx)
	assert.Equal(t, 2.0, *first.FPrime)
	assert.Equal(t, 1.5, *first.Error)
	assert.Nil(t, first.XPrev)
}

// TestSolve_ResponseJSON pins the wire field names.
func TestSolve_ResponseJSON(t *testing.T) {
	resp, err := solve.Solve(context.Background(), solve.Request{Equation: "x**2 - 4", InitialGuess: 1})
	require.NoError(t, err)
	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, key := range []string{"root", "roots", "converged", "status", "method", "final_error",
		"total_error", "iterations_count", "iterations_data", "message"} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, "converged", m["status"])
	rec := m["iterations_data"].([]any)[0].(map[string]any)
	for _, key := range []string{"iteration", "x_value", "f_x", "f_prime_x", "error"} {
		assert.Contains(t, rec, key)
	}
	assert.NotContains(t, rec, "x_prev")
}

// TestSolve_Secant records both points and omits the derivative.
func TestSolve_Secant(t *testing.T) {
	resp, err := solve.Solve(context.Background(), solve.Request{
		Equation:     "x**3 - 5*x + 3",
		Method:       solve.Secant,
		InitialGuess: 0,
		X1:           f64(1),
	})
	require.NoError(t, err)
	require.True(t, resp.Converged)
	assert.GreaterOrEqual(t, *resp.Root, 0.0)
	assert.LessOrEqual(t, *resp.Root, 1.0)
	assert.Len(t, resp.Roots, 3)
	assert.Empty(t, resp.Derivative)

	b, err := json.Marshal(resp.IterationsData[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"x_prev":0`)
	assert.NotContains(t, string(b), "f_prime_x")
}

// TestSolve_Bisection brackets the cubic root and reports invalid brackets.
func TestSolve_Bisection(t *testing.T) {
	resp, err := solve.Solve(context.Background(), solve.Request{
		Equation:     "x**3 - 2*x - 5",
		Method:       solve.Bisection,
		InitialGuess: 2,
		X1:           f64(3),
	})
	require.NoError(t, err)
	require.True(t, resp.Converged)
	assert.InDelta(t, 2.0945515, *resp.Root, 1e-5)
	require.NotNil(t, resp.IterationsData[0].Bracket)

	resp, err = solve.Solve(context.Background(), solve.Request{
		Equation:     "x**2 - 4",
		Method:       solve.Bisection,
		InitialGuess: -1,
		X1:           f64(1),
	})
	require.NoError(t, err)
	assert.Equal(t, trace.InvalidBracket, resp.Status)
	assert.Contains(t, resp.Message, "Invalid bracket")
	assert.Len(t, resp.Roots, 2)
}

// TestSolve_DerivativeNearZero reports one iteration.
func TestSolve_DerivativeNearZero(t *testing.T) {
	resp, err := solve.Solve(context.Background(), solve.Request{Equation: "x**2", InitialGuess: 0})
	require.NoError(t, err)
	assert.Equal(t, trace.DerivativeNearZero, resp.Status)
	assert.Equal(t, 1, resp.IterationsCount)
	assert.False(t, resp.Converged)
	assert.Contains(t, resp.Message, "derivative is near zero")
}

// TestSolve_FallbackToNearestRoot reports the scan root nearest the guess.
func TestSolve_FallbackToNearestRoot(t *testing.T) {
	resp, err := solve.Solve(context.Background(), solve.Request{Equation: "x**3 - 3*x", InitialGuess: 1})
	require.NoError(t, err)
	assert.False(t, resp.Converged)
	assert.Equal(t, trace.DerivativeNearZero, resp.Status)
	require.NotNil(t, resp.Root)
	assert.InDelta(t, math.Sqrt(3), *resp.Root, 1e-6)
	assert.Len(t, resp.Roots, 3)
	assert.Contains(t, resp.Message, "Reporting the root nearest the initial guess")
}

// TestSolve_NoRealRoot never converges and reports no roots.
func TestSolve_NoRealRoot(t *testing.T) {
	resp, err := solve.Solve(context.Background(), solve.Request{Equation: "x**2 + 1", InitialGuess: 0.5})
	require.NoError(t, err)
	assert.False(t, resp.Converged)
	assert.Contains(t, []trace.Status{trace.Diverged, trace.MaxIterationsExceeded}, resp.Status)
	assert.Nil(t, resp.Root)
	assert.NotNil(t, resp.Roots)
	assert.Empty(t, resp.Roots)
	assert.Contains(t, resp.Message, "no roots found")

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"root":null`)
	assert.Contains(t, string(b), `"roots":[]`)
}

// TestSolve_DomainErrorAtStart tags the failing start.
func TestSolve_DomainErrorAtStart(t *testing.T) {
	resp, err := solve.Solve(context.Background(), solve.Request{Equation: "log(x) - 1", InitialGuess: -1})
	require.NoError(t, err)
	assert.Equal(t, trace.DomainError, resp.Status)
	require.Len(t, resp.IterationsData, 1)
	assert.Nil(t, resp.IterationsData[0].Fx)
	require.Len(t, resp.Roots, 1)
	assert.InDelta(t, math.E, resp.Roots[0], 1e-6)
}

// TestSolve_Validation covers every rejected field before iteration.
func TestSolve_Validation(t *testing.T) {
	cases := []struct {
		name  string
		req   solve.Request
		field string
		want  error
	}{
		{"empty", solve.Request{Equation: "  "}, "equation", solve.ErrEmptyEquation},
		{"method", solve.Request{Equation: "x", Method: "halley"}, "method", solve.ErrUnknownMethod},
		{"tolerance zero", solve.Request{Equation: "x", Tolerance: f64(0)}, "tolerance", solve.ErrInvalidTolerance},
		{"tolerance nan", solve.Request{Equation: "x", Tolerance: f64(math.NaN())}, "tolerance", solve.ErrInvalidTolerance},
		{"iterations low", solve.Request{Equation: "x", MaxIterations: intp(0)}, "max_iterations", solve.ErrInvalidMaxIterations},
		{"iterations high", solve.Request{Equation: "x", MaxIterations: intp(10_001)}, "max_iterations", solve.ErrInvalidMaxIterations},
		{"guess", solve.Request{Equation: "x", InitialGuess: math.Inf(-1)}, "initial_guess", solve.ErrNonFiniteInput},
		{"secant missing", solve.Request{Equation: "x", Method: solve.Secant}, "x1", solve.ErrMissingSecondPoint},
		{"secant same", solve.Request{Equation: "x", Method: solve.Secant, InitialGuess: 1, X1: f64(1)}, "x1", solve.ErrIdenticalPoints},
		{"bisection nan", solve.Request{Equation: "x", Method: solve.Bisection, X1: f64(math.NaN())}, "x1", solve.ErrNonFiniteInput},
		{"range", solve.Request{Equation: "x", SearchRange: f64(-1)}, "search_range", solve.ErrInvalidSearchRange},
		{"points", solve.Request{Equation: "x", Subintervals: intp(1)}, "num_search_points", solve.ErrInvalidSubintervals},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := solve.Solve(context.Background(), tc.req)
			assert.Nil(t, resp)
			require.ErrorIs(t, err, tc.want)
			var ve *solve.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

// TestSolve_WindowNotRepresentable rejects finite inputs whose search window
// overflows or collapses to a single float.
func TestSolve_WindowNotRepresentable(t *testing.T) {
	cases := []struct {
		name  string
		req   solve.Request
		field string
	}{
		{"collapses at 1e20", solve.Request{Equation: "x**2 - 4", InitialGuess: 1e20}, "initial_guess"},
		{"overflows past max float", solve.Request{Equation: "x", InitialGuess: 1e308, SearchRange: f64(1e308)}, "search_range"},
		{"width overflows", solve.Request{Equation: "x", SearchRange: f64(1e308)}, "search_range"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				resp *solve.Response
				err  error
			)
			require.NotPanics(t, func() { resp, err = solve.Solve(context.Background(), tc.req) })
			assert.Nil(t, resp)
			require.ErrorIs(t, err, solve.ErrInvalidWindow)
			var ve *solve.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

// TestSolve_ExtremeStartingPoints centres the window between two huge
// opposite points without overflowing.
func TestSolve_ExtremeStartingPoints(t *testing.T) {
	for _, m := range []solve.Method{solve.Secant, solve.Bisection} {
		var (
			resp *solve.Response
			err  error
		)
		req := solve.Request{Equation: "x", Method: m, InitialGuess: -1e308, X1: f64(1e308)}
		require.NotPanics(t, func() { resp, err = solve.Solve(context.Background(), req) }, m)
		require.NoError(t, err, m)
		require.Len(t, resp.Roots, 1, m)
		assert.InDelta(t, 0, resp.Roots[0], 1e-6, m)
	}
}

// TestSolve_UnverifiedRootExplained converges on a step-size criterion whose
// residual is too large to list, and says so.
func TestSolve_UnverifiedRootExplained(t *testing.T) {
	resp, err := solve.Solve(context.Background(), solve.Request{
		Equation:     "1e9 * x**3",
		InitialGuess: 1,
		Tolerance:    f64(1e-3),
	})
	require.NoError(t, err)
	require.True(t, resp.Converged)
	require.NotNil(t, resp.Root)
	for _, r := range resp.Roots {
		assert.Greater(t, math.Abs(r-*resp.Root), 1e-4, "unverified root %g must not be listed", *resp.Root)
	}
	assert.Contains(t, resp.Message, "failed verification")
	assert.Contains(t, resp.Message, "is not listed in roots")
}

// TestSolve_ParseErrorVerbatim surfaces the compiler error unchanged.
func TestSolve_ParseErrorVerbatim(t *testing.T) {
	_, err := solve.Solve(context.Background(), solve.Request{Equation: "3x - 1"})
	var pe *expr.ParseError
	require.True(t, errors.As(err, &pe))
	assert.ErrorIs(t, err, expr.ErrImplicitMultiplication)
}

// TestSolve_SearchWindow honours search_range and num_search_points.
func TestSolve_SearchWindow(t *testing.T) {
	resp, err := solve.Solve(context.Background(), solve.Request{
		Equation:     "sin(x)",
		InitialGuess: 0.1,
		SearchRange:  f64(4),
		Subintervals: intp(80),
	})
	require.NoError(t, err)
	require.Len(t, resp.Roots, 3)
	assert.InDelta(t, -math.Pi, resp.Roots[0], 1e-6)
	assert.InDelta(t, 0, resp.Roots[1], 1e-6)
	assert.InDelta(t, math.Pi, resp.Roots[2], 1e-6)
}

// TestSolve_NumericDerivative reports the approximation.
func TestSolve_NumericDerivative(t *testing.T) {
	resp, err := solve.Solve(context.Background(), solve.Request{
		Equation:     "cos(x) - x",
		InitialGuess: 1,
		Derivative:   derivative.Numeric,
	})
	require.NoError(t, err)
	require.True(t, resp.Converged)
	assert.InDelta(t, 0.739085, *resp.Root, 1e-5)
	assert.Equal(t, "central difference", resp.Derivative)
}

// TestSolve_Observer sees every primary record.
func TestSolve_Observer(t *testing.T) {
	var seen []trace.Record
	resp, err := solve.Solve(context.Background(), solve.Request{Equation: "x**2 - 4", InitialGuess: 1},
		solve.WithObserver(func(r trace.Record) error {
			seen = append(seen, r)
			return nil
		}))
	require.NoError(t, err)
	assert.Len(t, seen, resp.IterationsCount)
}

// TestSolve_Policy applies a custom policy and rejects a broken one.
func TestSolve_Policy(t *testing.T) {
	p := solve.DefaultPolicy()
	p.HalfWidth = 1
	resp, err := solve.Solve(context.Background(), solve.Request{Equation: "x**2 - 4", InitialGuess: 1}, solve.WithPolicy(p))
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, resp.Roots, "the window [0, 2] holds only x = 2")

	p.Workers = 0
	_, err = solve.Solve(context.Background(), solve.Request{Equation: "x"}, solve.WithPolicy(p))
	assert.ErrorIs(t, err, solve.ErrInvalidPolicy)
}

// TestSolve_Cancelled surfaces the context error.
func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := solve.Solve(ctx, solve.Request{Equation: "sin(x)", InitialGuess: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
