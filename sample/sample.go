// Package sample evaluates a function over a grid of points.
package sample

import (
	"math"

	"github.com/katalvlaran/rootfind/expr"
)

// Sample is the tagged result of evaluating f at X.
type Sample struct {
	X      float64
	Result expr.Result
}

// Point is a successfully evaluated sample, shaped for charting.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Linspace returns n evenly spaced points from lo to hi inclusive. It
// returns nil for n < 2. The last point is exactly hi.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return nil
	}
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}

// Evaluate returns one Sample per input, in order. Failures are kept.
func Evaluate(f expr.Func, xs []float64) []Sample {
	out := make([]Sample, len(xs))
	for i, x := range xs {
		out[i] = Sample{X: x, Result: f.Eval(x)}
	}
	return out
}

// Points returns only the finite, valid evaluations of f over xs.
func Points(f expr.Func, xs []float64) []Point {
	out := make([]Point, 0, len(xs))
	for _, x := range xs {
		if r := f.Eval(x); r.Valid() && !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, Point{X: x, Y: r.Value})
		}
	}
	return out
}

// Sign returns -1, 0 or +1 for a valid result and ok=false for a failed one.
func Sign(r expr.Result) (sign int, ok bool) {
	if !r.Valid() {
		return 0, false
	}
	switch {
	case r.Value > 0:
		return 1, true
	case r.Value < 0:
		return -1, true
	}
	return 0, true
}
