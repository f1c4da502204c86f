package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"goa.design/clue/log"

	"github.com/katalvlaran/rootfind/internal/config"
	"github.com/katalvlaran/rootfind/internal/service"
	"github.com/katalvlaran/rootfind/internal/telemetry"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	debug      bool
	logFormat  string

	ctx context.Context
	cfg *config.Config
	svc *service.Service
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:          "rootfind",
		Short:        "Find roots of single-variable equations",
		Long:         "rootfind compiles an equation in x, runs Newton-Raphson, secant or bisection from a starting point and scans the surrounding window for every root.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a TOML configuration file")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: auto, json or text (overrides config)")

	cmd.AddCommand(
		newSolveCommand(a),
		newEvaluateCommand(a),
		newFunctionsCommand(),
		newConfigCommand(a),
	)
	return cmd
}

// setup loads configuration, applies flag overrides and builds the service.
func (a *app) setup(cmd *cobra.Command, errOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.debug {
		cfg.Log.Debug = true
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	a.ctx = telemetry.LogContext(parent, cfg.Log.Format, cfg.Log.Debug, errOut)
	if cfg.Log.Debug {
		log.Debugf(a.ctx, "debug logs enabled")
	}

	a.svc, err = service.New(cfg, telemetry.New())
	if err != nil {
		return fmt.Errorf("rootfind: %w", err)
	}
	return nil
}
