package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/solve"
)

type evaluateOptions struct {
	equation    string
	xs          []float64
	file        string
	inputFormat string
	output      string
}

func newEvaluateCommand(a *app) *cobra.Command {
	o := &evaluateOptions{}
	cmd := &cobra.Command{
		Use:     "evaluate [equation]",
		Aliases: []string{"eval"},
		Short:   "Evaluate an equation at a list of points",
		Example: `  rootfind evaluate "log(x)" --x -1,0,1,2.718281828`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req solve.EvaluateRequest
			if o.file != "" {
				data, format, err := readDocument(o.file, o.inputFormat)
				if err != nil {
					return err
				}
				if req, err = a.svc.DecodeEvaluate(data, format); err != nil {
					return err
				}
			} else {
				req = solve.EvaluateRequest{Equation: o.equation, XValues: o.xs}
				if len(args) == 1 {
					req.Equation = args[0]
				}
				if strings.TrimSpace(req.Equation) == "" {
					return errNoEquation
				}
			}
			resp := a.svc.Evaluate(a.ctx, req)
			return write(cmd.OutOrStdout(), o.output, resp, func() string { return renderEvaluate(resp) })
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.equation, "equation", "e", "", "equation in x")
	f.Float64SliceVar(&o.xs, "x", nil, "comma-separated x values")
	f.StringVarP(&o.file, "file", "f", "", "read the request from a JSON or YAML document")
	f.StringVar(&o.inputFormat, "input-format", "", "request document format: json or yaml (default from extension)")
	f.StringVarP(&o.output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}
