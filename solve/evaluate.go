package solve

import (
	"fmt"

	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/sample"
)

// Evaluate computes f at every requested point. Points that fail to
// evaluate are omitted. It reports failure in the response, never as an
// error: a malformed equation or no evaluable point gives Success=false.
func Evaluate(req EvaluateRequest) EvaluateResponse {
	f, err := expr.Compile(req.Equation)
	if err != nil {
		return EvaluateResponse{Points: []sample.Point{}, Message: fmt.Sprintf("Invalid equation: %v", err)}
	}

	pts := sample.Points(f, req.XValues)
	if len(pts) == 0 {
		return EvaluateResponse{Points: pts, Message: "Could not evaluate function at any of the provided points"}
	}

	msg := fmt.Sprintf("Successfully evaluated %d points", len(pts))
	if failed := len(req.XValues) - len(pts); failed > 0 {
		msg += fmt.Sprintf(" (%d points failed)", failed)
	}
	return EvaluateResponse{Points: pts, Success: true, Message: msg}
}
