package secant

import (
	"errors"
	"math"

	"github.com/katalvlaran/rootfind/trace"
)

var (
	ErrBadTolerance       = errors.New("secant: tolerance must be finite and > 0")
	ErrBadMaxIterations   = errors.New("secant: max iterations must be >= 1")
	ErrBadStallFloor      = errors.New("secant: stall floor must be finite and >= 0")
	ErrBadDivergenceBound = errors.New("secant: divergence bound must be > 0")

	// ErrIdenticalPoints is returned by CheckPoints when x0 == x1.
	ErrIdenticalPoints = errors.New("secant: starting points must differ")
)

// Options configures a secant run.
type Options struct {
	Tolerance       float64
	MaxIterations   int
	StallFloor      float64
	DivergenceBound float64
	OnIteration     trace.Observer
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions mirrors newton.DefaultOptions with StallFloor = 1e-12.
func DefaultOptions() Options {
	return Options{
		Tolerance:       1e-6,
		MaxIterations:   100,
		StallFloor:      1e-12,
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
	case !(o.StallFloor >= 0) || math.IsInf(o.StallFloor, 0):
		return ErrBadStallFloor
	case !(o.DivergenceBound > 0):
		return ErrBadDivergenceBound
	}
	return nil
}

// CheckPoints rejects identical starting points.
func CheckPoints(x0, x1 float64) error {
	if x0 == x1 {
		return ErrIdenticalPoints
	}
	return nil
}

// WithTolerance sets ε for the step error |x_{n+1} − x_n|.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 0) {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = eps
	}
}

// WithMaxIterations caps the number of steps.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithStallFloor sets the minimum |f(x_n) − f(x_{n−1})| accepted as a divisor.
func WithStallFloor(delta float64) Option {
	return func(o *Options) {
		if !(delta >= 0) || math.IsInf(delta, 0) {
			panic(ErrBadStallFloor.Error())
		}
		o.StallFloor = delta
	}
}

// WithDivergenceBound sets the |x| limit for both starting points and every
// iterate. +Inf disables it.
func WithDivergenceBound(bound float64) Option {
	return func(o *Options) {
		if !(bound > 0) {
			panic(ErrBadDivergenceBound.Error())
		}
		o.DivergenceBound = bound
	}
}

// WithObserver installs a per-step callback; nil removes it.
func WithObserver(obs trace.Observer) Option {
	return func(o *Options) {
		o.OnIteration = obs
	}
}
