package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/solve"
)

func newFunctionsCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "functions",
		Short: "List supported functions, constants, operators and methods",
		Args:  cobra.NoArgs,
		// The catalogue needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := solve.Functions()
			return write(cmd.OutOrStdout(), output, cat, func() string { return renderCatalog(cat) })
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}
