package scan

import (
	"errors"
	"math"
	"runtime"

	"github.com/katalvlaran/rootfind/trace"
)

var (
	ErrBadWindow         = errors.New("scan: window must be finite with lo < hi")
	ErrBadSubintervals   = errors.New("scan: subintervals must be in [1, 1000000]")
	ErrBadMergeTolerance = errors.New("scan: merge tolerance must be finite and >= 0")
	ErrBadWorkers        = errors.New("scan: workers must be >= 1")
	ErrBadResidualLimit  = errors.New("scan: residual limit must be > 0")
	ErrNilRunner         = errors.New("scan: runner is nil")
)

// Bracket is a subinterval known to contain a root. Exact brackets have
// Lo == Hi at a sample where f was exactly zero.
type Bracket struct {
	Lo, Hi float64
	Exact  bool
}

// Root is one accepted, deduplicated root.
type Root struct {
	Value      float64
	FinalError float64
	Residual   float64
	Bracket    Bracket
	// Seed marks the root found from the caller's own starting point(s).
	Seed bool
}

// RootSet is an ascending list of distinct roots plus the index of the
// primary root, -1 when there is none.
type RootSet struct {
	Roots           []Root
	Primary         int
	PrimaryFromSeed bool
}

// Values returns the root values in ascending order, never nil.
func (s RootSet) Values() []float64 {
	out := make([]float64, len(s.Roots))
	for i, r := range s.Roots {
		out[i] = r.Value
	}
	return out
}

// PrimaryRoot returns the primary root, if any.
func (s RootSet) PrimaryRoot() (Root, bool) {
	if s.Primary < 0 || s.Primary >= len(s.Roots) {
		return Root{}, false
	}
	return s.Roots[s.Primary], true
}

// Result is the full scan output. Outcomes[i] belongs to Brackets[i].
type Result struct {
	RootSet
	Lo, Hi   float64
	Brackets []Bracket
	Outcomes []trace.Outcome
}

// Options configures a scan.
type Options struct {
	Lo, Hi         float64
	Subintervals   int
	MergeTolerance float64
	Workers        int
	// ResidualLimit is the largest |f(root)| accepted.
	ResidualLimit float64
	Runner        Runner

	seed *Seed
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions scans [-10, 10] in 200 subintervals with Newton, merging
// roots within 1e-4 and accepting residuals up to 1e-5.
func DefaultOptions() Options {
	return Options{
		Lo:             -10,
		Hi:             10,
		Subintervals:   200,
		MergeTolerance: 1e-4,
		Workers:        runtime.GOMAXPROCS(0),
		ResidualLimit:  1e-5,
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	switch {
	case !validWindow(o.Lo, o.Hi):
		return ErrBadWindow
	case o.Subintervals < 1 || o.Subintervals > 1_000_000:
		return ErrBadSubintervals
	case !(o.MergeTolerance >= 0) || math.IsInf(o.MergeTolerance, 0):
		return ErrBadMergeTolerance
	case o.Workers < 1:
		return ErrBadWorkers
	case !(o.ResidualLimit > 0):
		return ErrBadResidualLimit
	}
	return nil
}

// WithDomain scans [lo, hi].
func WithDomain(lo, hi float64) Option {
	return func(o *Options) {
		if !validWindow(lo, hi) {
			panic(ErrBadWindow.Error())
		}
		o.Lo, o.Hi = lo, hi
	}
}

// WithCenter scans [center − halfWidth, center + halfWidth].
func WithCenter(center, halfWidth float64) Option {
	return WithDomain(center-halfWidth, center+halfWidth)
}

// WithSubintervals sets how many equal pieces the window is sampled in.
func WithSubintervals(n int) Option {
	return func(o *Options) {
		if n < 1 || n > 1_000_000 {
			panic(ErrBadSubintervals.Error())
		}
		o.Subintervals = n
	}
}

// WithMergeTolerance merges roots closer than tol; 0 keeps only exact
// duplicates apart from rounding.
func WithMergeTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol >= 0) || math.IsInf(tol, 0) {
			panic(ErrBadMergeTolerance.Error())
		}
		o.MergeTolerance = tol
	}
}

// WithWorkers bounds the number of concurrent bracket runs.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithResidualLimit rejects converged runs with |f(root)| > limit. The seed
// is held to the same limit.
func WithResidualLimit(limit float64) Option {
	return func(o *Options) {
		if !(limit > 0) {
			panic(ErrBadResidualLimit.Error())
		}
		o.ResidualLimit = limit
	}
}

// WithRunner selects the refining solver; the default is Newton with the
// symbolic derivative supplied to Scan.
func WithRunner(r Runner) Option {
	return func(o *Options) {
		if r == nil {
			panic(ErrNilRunner.Error())
		}
		o.Runner = r
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// validWindow also requires hi-lo to be finite so the sample step is.
func validWindow(lo, hi float64) bool {
	return finite(lo) && finite(hi) && lo < hi && finite(hi-lo)
}
