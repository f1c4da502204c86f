package scan

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/sample"
	"github.com/katalvlaran/rootfind/trace"
)

// Seed describes the caller's own run, folded into the root set.
type Seed struct {
	Guess   float64
	Outcome trace.Outcome
}

// WithSeed marks guess as the caller's starting point and out as the run
// started from it. A converged seed becomes the primary root.
func WithSeed(guess float64, out trace.Outcome) Option {
	return func(o *Options) {
		o.seed = &Seed{Guess: guess, Outcome: out}
	}
}

// Scan samples f over the window, refines each bracket and returns the
// deduplicated roots. df feeds the default Newton runner and may be nil
// when WithRunner is given. The only errors are invalid options and
// context cancellation.
func Scan(ctx context.Context, f, df expr.Func, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Result{}, err
	}
	if o.Runner == nil {
		if df == nil {
			return Result{}, ErrNilRunner
		}
		o.Runner = NewtonRunner(df)
	}

	res := Result{Lo: o.Lo, Hi: o.Hi}
	res.Brackets = FindBrackets(f, o.Lo, o.Hi, o.Subintervals)
	res.Outcomes = make([]trace.Outcome, len(res.Brackets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, b := range res.Brackets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res.Outcomes[i] = o.refine(f, b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}

	res.RootSet = o.collect(f, res.Brackets, res.Outcomes)
	return res, nil
}

func (o *Options) refine(f expr.Func, b Bracket) trace.Outcome {
	if b.Exact {
		return trace.NewRun(0, nil).Finish(trace.Converged, b.Lo)
	}
	start := b.Lo + (b.Hi-b.Lo)/2
	if o.seed != nil && o.seed.Guess > b.Lo && o.seed.Guess < b.Hi {
		start = o.seed.Guess
	}
	return o.Runner.Run(f, b, start)
}

// FindBrackets samples f at n+1 points over [lo, hi] and returns the exact
// zeros and strict sign changes in ascending order.
func FindBrackets(f expr.Func, lo, hi float64, n int) []Bracket {
	samples := sample.Evaluate(f, sample.Linspace(lo, hi, n+1))
	var out []Bracket
	for i, s := range samples {
		sign, ok := sample.Sign(s.Result)
		if !ok {
			continue
		}
		if sign == 0 {
			out = append(out, Bracket{Lo: s.X, Hi: s.X, Exact: true})
			continue
		}
		if i+1 == len(samples) {
			break
		}
		next, ok := sample.Sign(samples[i+1].Result)
		if ok && next == -sign {
			out = append(out, Bracket{Lo: s.X, Hi: samples[i+1].X})
		}
	}
	return out
}

// accept applies the residual and window checks to a converged outcome.
func (o *Options) accept(f expr.Func, out trace.Outcome, seeded bool) (Root, bool) {
	if !out.Converged() || !out.HasRoot {
		return Root{}, false
	}
	r := f.Eval(out.Root)
	if !r.Valid() || math.Abs(r.Value) > o.ResidualLimit {
		return Root{}, false
	}
	if !seeded {
		slack := (o.Hi - o.Lo) / float64(o.Subintervals)
		if out.Root < o.Lo-slack || out.Root > o.Hi+slack {
			return Root{}, false
		}
	}
	return Root{Value: out.Root, FinalError: out.FinalError, Residual: math.Abs(r.Value), Seed: seeded}, true
}

func (o *Options) collect(f expr.Func, brackets []Bracket, outs []trace.Outcome) RootSet {
	cands := make([]Root, 0, len(outs)+1)
	for i, out := range outs {
		if root, ok := o.accept(f, out, false); ok {
			root.Bracket = brackets[i]
			cands = append(cands, root)
		}
	}
	if o.seed != nil {
		if root, ok := o.accept(f, o.seed.Outcome, true); ok {
			cands = append(cands, root)
		}
	}

	set := RootSet{Roots: Dedup(cands, o.MergeTolerance), Primary: -1}
	for i, r := range set.Roots {
		if r.Seed {
			set.Primary, set.PrimaryFromSeed = i, true
			return set
		}
	}
	guess := o.Lo + (o.Hi-o.Lo)/2
	if o.seed != nil {
		guess = o.seed.Guess
	}
	set.Primary = nearest(set.Roots, guess)
	return set
}

// Dedup sorts roots ascending and merges neighbours closer than tol,
// keeping the one with the smaller FinalError. The result is never nil.
func Dedup(roots []Root, tol float64) []Root {
	sorted := append([]Root(nil), roots...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	out := make([]Root, 0, len(sorted))
	for _, r := range sorted {
		if n := len(out); n > 0 && r.Value-out[n-1].Value < tol {
			seed := out[n-1].Seed || r.Seed
			if r.FinalError < out[n-1].FinalError {
				out[n-1] = r
			}
			out[n-1].Seed = seed
			continue
		}
		out = append(out, r)
	}
	return out
}

func nearest(roots []Root, x float64) int {
	best, dist := -1, math.Inf(1)
	for i, r := range roots {
		if d := math.Abs(r.Value - x); d < dist {
			best, dist = i, d
		}
	}
	return best
}
