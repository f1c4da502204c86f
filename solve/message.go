package solve

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/rootfind/trace"
)

// message describes the run. unverified marks a converged root that failed
// the scan's residual check and is therefore missing from Roots.
func message(out trace.Outcome, p params, nroots int, root *float64, fallback, unverified bool) string {
	var sb strings.Builder
	n := out.Iterations()
	last, _ := out.Last()

	switch out.Status {
	case trace.Converged:
		fmt.Fprintf(&sb, "Converged to root %g after %d iteration(s)", out.Root, n)
	case trace.MaxIterationsExceeded:
		fmt.Fprintf(&sb, "Did not converge within %d iteration(s)", p.maxIter)
	case trace.DerivativeNearZero:
		fmt.Fprintf(&sb, "Stopped: derivative is near zero at x = %g", last.X)
	case trace.StalledBrackets:
		fmt.Fprintf(&sb, "Stopped: f(x) is nearly equal at x = %g and x = %g, so the secant is flat", prev(last), last.X)
	case trace.Diverged:
		sb.WriteString("Diverged: the iterates left the bounded region")
	case trace.DomainError:
		if n == 0 {
			sb.WriteString("Stopped: the function cannot be evaluated at the starting point(s)")
		} else {
			fmt.Fprintf(&sb, "Stopped: the function cannot be evaluated at x = %g", last.X)
		}
	case trace.InvalidBracket:
		fmt.Fprintf(&sb, "Invalid bracket: f(%g) and f(%g) must have opposite signs", p.x0, p.x1)
	case trace.Stopped:
		fmt.Fprintf(&sb, "Stopped by observer after %d iteration(s)", n)
	default:
		fmt.Fprintf(&sb, "Finished with status %s", out.Status)
	}

	if nroots == 0 {
		sb.WriteString("; no roots found in the search range. Try adjusting initial guess or search range.")
	} else {
		fmt.Fprintf(&sb, "; found %d root(s) in the search range.", nroots)
		if fallback && root != nil {
			fmt.Fprintf(&sb, " Reporting the root nearest the initial guess: %g.", *root)
		}
	}
	if unverified {
		fmt.Fprintf(&sb, " The converged root %g failed verification (|f(root)| = %g) and is not listed in roots.",
			out.Root, math.Abs(p.f.Eval(out.Root).Value))
	}
	return sb.String()
}

func prev(r trace.Record) float64 {
	if r.XPrev != nil {
		return *r.XPrev
	}
	return r.X
}
