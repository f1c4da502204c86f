package solve

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/derivative"
	"github.com/katalvlaran/rootfind/newton"
	"github.com/katalvlaran/rootfind/scan"
	"github.com/katalvlaran/rootfind/secant"
	"github.com/katalvlaran/rootfind/trace"
)

// Solve validates req, runs the requested method from the caller's
// starting point(s) and scans the surrounding window for every root.
func Solve(ctx context.Context, req Request, opts ...Option) (*Response, error) {
	o := options{policy: DefaultPolicy()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.policy.Validate(); err != nil {
		return nil, err
	}
	p, err := validate(req, o.policy)
	if err != nil {
		return nil, err
	}

	var (
		primary trace.Outcome
		runner  scan.Runner
		dfText  string
	)
	switch p.method {
	case Newton:
		df := derivative.New(p.f, p.mode)
		dfText = derivative.Describe(df)
		nopts := []newton.Option{
			newton.WithTolerance(p.tol),
			newton.WithMaxIterations(p.maxIter),
			newton.WithDerivativeFloor(o.policy.DerivativeFloor),
			newton.WithDivergenceBound(o.policy.DivergenceBound),
		}
		primary = newton.Solve(p.f, df, p.x0, append(nopts, newton.WithObserver(o.observer))...)
		runner = scan.NewtonRunner(df, nopts...)
	case Secant:
		sopts := []secant.Option{
			secant.WithTolerance(p.tol),
			secant.WithMaxIterations(p.maxIter),
			secant.WithStallFloor(o.policy.StallFloor),
			secant.WithDivergenceBound(o.policy.DivergenceBound),
		}
		primary = secant.Solve(p.f, p.x0, p.x1, append(sopts, secant.WithObserver(o.observer))...)
		runner = scan.SecantRunner(sopts...)
	case Bisection:
		bopts := []bisection.Option{
			bisection.WithTolerance(p.tol),
			bisection.WithMaxIterations(p.maxIter),
		}
		primary = bisection.Solve(p.f, p.x0, p.x1, append(bopts, bisection.WithObserver(o.observer))...)
		runner = scan.BisectionRunner(bopts...)
	}

	found, err := scan.Scan(ctx, p.f, nil,
		scan.WithDomain(p.lo, p.hi),
		scan.WithSubintervals(p.subintervals),
		scan.WithMergeTolerance(o.policy.MergeTolerance),
		scan.WithWorkers(o.policy.Workers),
		scan.WithResidualLimit(o.policy.ResidualFactor*p.tol),
		scan.WithRunner(runner),
		scan.WithSeed(p.x0, primary),
	)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	resp := &Response{
		Roots:           found.Values(),
		Converged:       primary.Converged(),
		Status:          primary.Status,
		Method:          p.method,
		Derivative:      dfText,
		FinalError:      primary.FinalError,
		TotalError:      primary.FinalError,
		IterationsCount: primary.Iterations(),
		IterationsData:  iterations(primary.Records),
	}
	fallback := false
	switch {
	case primary.Converged():
		resp.Root = trace.Ptr(primary.Root)
	default:
		if r, ok := found.PrimaryRoot(); ok {
			resp.Root = trace.Ptr(r.Value)
			fallback = true
		}
	}
	unverified := primary.Converged() && !found.PrimaryFromSeed
	resp.Message = message(primary, p, len(resp.Roots), resp.Root, fallback, unverified)
	return resp, nil
}

func iterations(recs []trace.Record) []Iteration {
	out := make([]Iteration, len(recs))
	for i, r := range recs {
		out[i] = Iteration{
			Iteration: r.Iteration,
			X:         r.X,
			Fx:        finitePtr(r.Fx),
			FPrime:    r.FPrime,
			XPrev:     r.XPrev,
			Bracket:   r.Bracket,
			Error:     finitePtr(r.Error),
		}
		if r.FPrime != nil {
			out[i].FPrime = finitePtr(*r.FPrime)
		}
	}
	return out
}

func finitePtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return trace.Ptr(v)
}
