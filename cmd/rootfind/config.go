package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/internal/config"
)

func newConfigCommand(a *app) *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long:  "Print the configuration after defaults, the --config file and ROOTFIND_* environment overrides are applied.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if save != "" {
				return config.Save(a.cfg, save)
			}
			return config.Write(cmd.OutOrStdout(), a.cfg)
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "write the configuration to this path instead of stdout")
	return cmd
}
