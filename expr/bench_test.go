package expr_test

import (
	"testing"

	"github.com/katalvlaran/rootfind/expr"
)

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = expr.Compile("x**3 - 6*x**2 + 11*x - 6 + sin(x) / (1 + exp(-x))")
	}
}

func BenchmarkEval(b *testing.B) {
	e := expr.MustCompile("x**3 - 6*x**2 + 11*x - 6 + sin(x) / (1 + exp(-x))")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Eval(float64(i%100) / 10)
	}
}

func BenchmarkDiff(b *testing.B) {
	e := expr.MustCompile("x**3 - 6*x**2 + 11*x - 6 + sin(x) / (1 + exp(-x))")
	for i := 0; i < b.N; i++ {
		_ = expr.Diff(e)
	}
}
