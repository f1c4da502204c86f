// Command rootfind solves and samples single-variable equations from the
// command line.
//
//	rootfind solve "x**2 - 4" --guess 1
//	rootfind solve "x**3 - 5*x + 3" --method secant --guess 0 --x1 1 -o json
//	rootfind solve --file request.yaml
//	rootfind evaluate "log(x)" --x -1,0,1,2.718281828
//	rootfind functions
//	rootfind config
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
