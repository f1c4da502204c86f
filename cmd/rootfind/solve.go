package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/derivative"
	"github.com/katalvlaran/rootfind/internal/service"
	"github.com/katalvlaran/rootfind/solve"
)

var errNoEquation = errors.New("an equation is required (argument, --equation or --file)")

type solveOptions struct {
	equation    string
	method      string
	guess       float64
	x1          float64
	tolerance   float64
	maxIter     int
	searchRange float64
	points      int
	derivative  string
	file        string
	inputFormat string
	output      string
}

func newSolveCommand(a *app) *cobra.Command {
	o := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve [equation]",
		Short: "Find a root and every root near the starting point",
		Example: `  rootfind solve "x**2 - 4" --guess 1
  rootfind solve "cos(x) - x" --method secant --guess 0 --x1 1
  rootfind solve "x**3 - 2*x - 5" --method bisection --guess 2 --x1 3 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := o.request(cmd, a.svc, args)
			if err != nil {
				return err
			}
			resp, err := a.svc.Solve(a.ctx, req)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), o.output, resp, func() string { return renderSolve(resp) })
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.equation, "equation", "e", "", "equation in x, e.g. \"x**2 - 4\"")
	f.StringVarP(&o.method, "method", "m", string(solve.Newton), "method: newton, secant or bisection")
	f.Float64VarP(&o.guess, "guess", "g", 0, "initial guess (lower bracket end for bisection)")
	f.Float64Var(&o.x1, "x1", 0, "second point for secant and bisection")
	f.Float64Var(&o.tolerance, "tol", 0, "convergence tolerance (config default when unset)")
	f.IntVar(&o.maxIter, "max-iter", 0, "iteration cap (config default when unset)")
	f.Float64Var(&o.searchRange, "range", 0, "half-width of the root scan window")
	f.IntVar(&o.points, "points", 0, "number of scan subintervals")
	f.StringVar(&o.derivative, "derivative", "symbolic", "Newton derivative: symbolic or numeric")
	f.StringVarP(&o.file, "file", "f", "", "read the request from a JSON or YAML document")
	f.StringVar(&o.inputFormat, "input-format", "", "request document format: json or yaml (default from extension)")
	f.StringVarP(&o.output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}

// request builds the solve request from a document or from flags; explicit
// flags set the optional fields.
func (o *solveOptions) request(cmd *cobra.Command, svc *service.Service, args []string) (solve.Request, error) {
	if o.file != "" {
		data, format, err := readDocument(o.file, o.inputFormat)
		if err != nil {
			return solve.Request{}, err
		}
		return svc.DecodeSolve(data, format)
	}

	eq := o.equation
	if len(args) == 1 {
		eq = args[0]
	}
	if strings.TrimSpace(eq) == "" {
		return solve.Request{}, errNoEquation
	}
	var mode derivative.Mode
	if err := mode.UnmarshalText([]byte(o.derivative)); err != nil {
		return solve.Request{}, err
	}
	req := solve.Request{
		Equation:     eq,
		Method:       solve.Method(strings.ToLower(o.method)),
		InitialGuess: o.guess,
		Derivative:   mode,
	}
	flags := cmd.Flags()
	if flags.Changed("x1") {
		req.X1 = &o.x1
	}
	if flags.Changed("tol") {
		req.Tolerance = &o.tolerance
	}
	if flags.Changed("max-iter") {
		req.MaxIterations = &o.maxIter
	}
	if flags.Changed("range") {
		req.SearchRange = &o.searchRange
	}
	if flags.Changed("points") {
		req.Subintervals = &o.points
	}
	return req, nil
}

// readDocument reads path and picks its format from explicit or the file
// extension.
func readDocument(path, explicit string) ([]byte, service.Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	name := explicit
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	format, err := service.ParseFormat(name)
	if err != nil {
		return nil, "", err
	}
	return data, format, nil
}
