package solve

import "github.com/katalvlaran/rootfind/expr"

// Function describes one supported function.
type Function struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Catalog lists what an equation may contain.
type Catalog struct {
	Functions []Function         `json:"functions" yaml:"functions"`
	Constants map[string]float64 `json:"constants" yaml:"constants"`
	Operators []string           `json:"operators" yaml:"operators"`
	Methods   []Method           `json:"methods" yaml:"methods"`
	Examples  []string           `json:"examples" yaml:"examples"`
}

var descriptions = map[string]string{
	"abs":   "absolute value",
	"sqrt":  "square root, x >= 0",
	"exp":   "e raised to the argument",
	"log":   "natural logarithm, x > 0",
	"ln":    "natural logarithm, x > 0",
	"log10": "base-10 logarithm, x > 0",
	"log2":  "base-2 logarithm, x > 0",
	"sin":   "sine (radians)",
	"cos":   "cosine (radians)",
	"tan":   "tangent (radians), undefined at odd multiples of pi/2",
	"asin":  "inverse sine, -1 <= x <= 1",
	"acos":  "inverse cosine, -1 <= x <= 1",
	"atan":  "inverse tangent",
	"sinh":  "hyperbolic sine",
	"cosh":  "hyperbolic cosine",
	"tanh":  "hyperbolic tangent",
}

// Functions returns the catalog of functions, constants, operators,
// methods and example equations.
func Functions() Catalog {
	names := expr.Functions()
	fns := make([]Function, len(names))
	for i, name := range names {
		fns[i] = Function{Name: name, Description: descriptions[name]}
	}
	return Catalog{
		Functions: fns,
		Constants: expr.Constants(),
		Operators: []string{"+", "-", "*", "/", "**", "^"},
		Methods:   Methods(),
		Examples: []string{
			"x**2 - 4",
			"sin(x) - 0.5",
			"exp(x) - 2",
			"log(x) - 1",
			"x**3 - 2*x - 5",
			"cos(x) - x",
			"tan(x) - x",
		},
	}
}
