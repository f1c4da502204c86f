package solve

import (
	"errors"
	"math"
	"strings"

	"github.com/katalvlaran/rootfind/derivative"
	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/secant"
)

// ErrInvalidPolicy is returned when a Policy cannot drive a solve.
var ErrInvalidPolicy = errors.New("solve: invalid policy")

// Validate checks that every policy constant is usable.
func (p Policy) Validate() error {
	switch {
	case !positive(p.Tolerance), p.MaxIterations < 1,
		p.MaxIterationsUpperBound < p.MaxIterations,
		!(p.DerivativeFloor >= 0), !(p.StallFloor >= 0),
		!(p.DivergenceBound > 0),
		!positive(p.HalfWidth),
		p.Subintervals < 2, p.MaxSubintervals < p.Subintervals,
		!(p.MergeTolerance >= 0), !positive(p.ResidualFactor),
		p.Workers < 1:
		return ErrInvalidPolicy
	}
	return nil
}

// params is a validated, defaulted Request.
type params struct {
	f            *expr.Expression
	method       Method
	x0, x1       float64
	tol          float64
	maxIter      int
	halfWidth    float64
	lo, hi       float64
	subintervals int
	mode         derivative.Mode
}

// validate checks every field before any iteration runs. Parse failures
// are returned as the compiler's *expr.ParseError.
func validate(req Request, p Policy) (params, error) {
	var out params
	if strings.TrimSpace(req.Equation) == "" {
		return out, invalid("equation", ErrEmptyEquation)
	}
	f, err := expr.Compile(req.Equation)
	if err != nil {
		return out, err
	}
	out.f = f

	switch req.Method {
	case "":
		out.method = Newton
	case Newton, Secant, Bisection:
		out.method = req.Method
	default:
		return out, invalid("method", ErrUnknownMethod)
	}

	out.tol = p.Tolerance
	if req.Tolerance != nil {
		if !positive(*req.Tolerance) {
			return out, invalid("tolerance", ErrInvalidTolerance)
		}
		out.tol = *req.Tolerance
	}

	out.maxIter = p.MaxIterations
	if req.MaxIterations != nil {
		if n := *req.MaxIterations; n < 1 || n > p.MaxIterationsUpperBound {
			return out, invalid("max_iterations", ErrInvalidMaxIterations)
		}
		out.maxIter = *req.MaxIterations
	}

	if !isFinite(req.InitialGuess) {
		return out, invalid("initial_guess", ErrNonFiniteInput)
	}
	out.x0 = req.InitialGuess
	if out.method != Newton {
		if req.X1 == nil {
			return out, invalid("x1", ErrMissingSecondPoint)
		}
		if !isFinite(*req.X1) {
			return out, invalid("x1", ErrNonFiniteInput)
		}
		if err = secant.CheckPoints(out.x0, *req.X1); err != nil {
			return out, invalid("x1", err)
		}
		out.x1 = *req.X1
	}

	out.halfWidth = p.HalfWidth
	if req.SearchRange != nil {
		if !positive(*req.SearchRange) {
			return out, invalid("search_range", ErrInvalidSearchRange)
		}
		out.halfWidth = *req.SearchRange
	}

	center := out.x0
	if out.method != Newton {
		center = out.x0/2 + out.x1/2
	}
	out.lo, out.hi = center-out.halfWidth, center+out.halfWidth
	if !isFinite(out.lo) || !isFinite(out.hi) || !(out.lo < out.hi) || !isFinite(out.hi-out.lo) {
		field := "initial_guess"
		if req.SearchRange != nil {
			field = "search_range"
		}
		return out, invalid(field, ErrInvalidWindow)
	}

	out.subintervals = p.Subintervals
	if req.Subintervals != nil {
		if n := *req.Subintervals; n < 2 || n > p.MaxSubintervals {
			return out, invalid("num_search_points", ErrInvalidSubintervals)
		}
		out.subintervals = *req.Subintervals
	}

	out.mode = req.Derivative
	return out, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }
