package expr

import (
	"math"
	"sort"
)

// cosEpsilon bounds |cos(v)| below which tan(v) is treated as a pole.
const cosEpsilon = 1e-15

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// functions holds the evaluators. Derivative rules live in derivatives so
// that evaluation does not depend on the Diff constructors.
var functions = map[string]func(v float64) Result{
	"sin": func(v float64) Result { return ok(math.Sin(v)) },
	"cos": func(v float64) Result { return ok(math.Cos(v)) },
	"tan": func(v float64) Result {
		if math.Abs(math.Cos(v)) < cosEpsilon {
			return fail(StatusDomainError, "tan")
		}
		return check(math.Tan(v), "tan")
	},
	"exp":   func(v float64) Result { return check(math.Exp(v), "exp") },
	"log":   logOf(math.Log, "log"),
	"ln":    logOf(math.Log, "ln"),
	"log10": logOf(math.Log10, "log10"),
	"log2":  logOf(math.Log2, "log2"),
	"sqrt": func(v float64) Result {
		if v < 0 {
			return fail(StatusDomainError, "sqrt")
		}
		return ok(math.Sqrt(v))
	},
	"abs":  func(v float64) Result { return ok(math.Abs(v)) },
	"asin": inUnit(math.Asin, "asin"),
	"acos": inUnit(math.Acos, "acos"),
	"atan": func(v float64) Result { return ok(math.Atan(v)) },
	"sinh": func(v float64) Result { return check(math.Sinh(v), "sinh") },
	"cosh": func(v float64) Result { return check(math.Cosh(v), "cosh") },
	"tanh": func(v float64) Result { return ok(math.Tanh(v)) },
}

// derivatives maps each function to d/du f(u); Diff applies the chain
// factor. Only Diff reads it.
var derivatives = map[string]func(u Node) Node{
	"sin":   func(u Node) Node { return Call{Fn: "cos", Arg: u} },
	"cos":   func(u Node) Node { return neg(Call{Fn: "sin", Arg: u}) },
	"tan":   func(u Node) Node { return add(Number{1}, pow(Call{Fn: "tan", Arg: u}, Number{2})) },
	"exp":   func(u Node) Node { return Call{Fn: "exp", Arg: u} },
	"log":   func(u Node) Node { return div(Number{1}, u) },
	"ln":    func(u Node) Node { return div(Number{1}, u) },
	"log10": func(u Node) Node { return div(Number{1}, mul(u, Call{Fn: "ln", Arg: Number{10}})) },
	"log2":  func(u Node) Node { return div(Number{1}, mul(u, Call{Fn: "ln", Arg: Number{2}})) },
	"sqrt":  func(u Node) Node { return div(Number{1}, mul(Number{2}, Call{Fn: "sqrt", Arg: u})) },
	"abs":   func(u Node) Node { return div(u, Call{Fn: "abs", Arg: u}) },
	"asin":  func(u Node) Node { return div(Number{1}, Call{Fn: "sqrt", Arg: sub(Number{1}, pow(u, Number{2}))}) },
	"acos":  func(u Node) Node { return neg(div(Number{1}, Call{Fn: "sqrt", Arg: sub(Number{1}, pow(u, Number{2}))})) },
	"atan":  func(u Node) Node { return div(Number{1}, add(Number{1}, pow(u, Number{2}))) },
	"sinh":  func(u Node) Node { return Call{Fn: "cosh", Arg: u} },
	"cosh":  func(u Node) Node { return Call{Fn: "sinh", Arg: u} },
	"tanh":  func(u Node) Node { return sub(Number{1}, pow(Call{Fn: "tanh", Arg: u}, Number{2})) },
}

func logOf(f func(float64) float64, name string) func(float64) Result {
	return func(v float64) Result {
		if v <= 0 {
			return fail(StatusDomainError, name)
		}
		return ok(f(v))
	}
}

func inUnit(f func(float64) float64, name string) func(float64) Result {
	return func(v float64) Result {
		if v < -1 || v > 1 {
			return fail(StatusDomainError, name)
		}
		return ok(f(v))
	}
}

// Functions returns the names of all supported functions, sorted.
func Functions() []string {
	out := make([]string, 0, len(functions))
	for name := range functions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Constants returns the supported named constants and their values.
func Constants() map[string]float64 {
	out := make(map[string]float64, len(constants))
	for k, v := range constants {
		out[k] = v
	}
	return out
}
