package newton

import (
	"errors"
	"math"

	"github.com/katalvlaran/rootfind/trace"
)

// Sentinel errors returned by Options.Validate. The With* constructors
// panic with the same messages.
var (
	ErrBadTolerance       = errors.New("newton: tolerance must be finite and > 0")
	ErrBadMaxIterations   = errors.New("newton: max iterations must be >= 1")
	ErrBadDerivativeFloor = errors.New("newton: derivative floor must be finite and >= 0")
	ErrBadDivergenceBound = errors.New("newton: divergence bound must be > 0")
)

// Options configures a Newton run.
type Options struct {
	Tolerance       float64        // step error threshold ε
	MaxIterations   int            // hard cap on recorded steps
	DerivativeFloor float64        // δ: |f'| below this stops the run
	DivergenceBound float64        // |x| above this counts as divergence
	OnIteration     trace.Observer // optional per-step callback
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns ε = 1e-6, 100 iterations, δ = 1e-12 and a
// divergence bound of 1e12.
func DefaultOptions() Options {
	return Options{
		Tolerance:       1e-6,
		MaxIterations:   100,
		DerivativeFloor: 1e-12,
		DivergenceBound: 1e12,
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	switch {
	case !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0):
		return ErrBadTolerance
	case o.MaxIterations < 1:
		return ErrBadMaxIterations
	case !(o.DerivativeFloor >= 0) || math.IsInf(o.DerivativeFloor, 0):
		return ErrBadDerivativeFloor
	case !(o.DivergenceBound > 0):
		return ErrBadDivergenceBound
	}
	return nil
}

// WithTolerance sets ε. Panics unless eps is finite and positive.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 0) {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = eps
	}
}

// WithMaxIterations caps the number of steps. Panics for n < 1.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithDerivativeFloor sets δ. Panics for negative or non-finite values.
func WithDerivativeFloor(delta float64) Option {
	return func(o *Options) {
		if !(delta >= 0) || math.IsInf(delta, 0) {
			panic(ErrBadDerivativeFloor.Error())
		}
		o.DerivativeFloor = delta
	}
}

// WithDivergenceBound sets the |x| limit. +Inf disables the bound.
func WithDivergenceBound(bound float64) Option {
	return func(o *Options) {
		if !(bound > 0) {
			panic(ErrBadDivergenceBound.Error())
		}
		o.DivergenceBound = bound
	}
}

// WithObserver installs a per-step callback.
func WithObserver(obs trace.Observer) Option {
	return func(o *Options) {
		o.OnIteration = obs
	}
}
