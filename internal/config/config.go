// Package config loads the rootfind configuration from TOML with
// environment overrides and converts it into a solve.Policy.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/rootfind/solve"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ROOTFIND_"

// ErrInvalidConfig matches any error returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full configuration file.
type Config struct {
	Solver  SolverConfig  `toml:"solver"`
	Scan    ScanConfig    `toml:"scan"`
	Service ServiceConfig `toml:"service"`
	Log     LogConfig     `toml:"log"`
}

// SolverConfig holds per-run defaults and numeric guards.
type SolverConfig struct {
	Tolerance               float64 `toml:"tolerance"`
	MaxIterations           int     `toml:"max_iterations"`
	MaxIterationsUpperBound int     `toml:"max_iterations_upper_bound"`
	DerivativeFloor         float64 `toml:"derivative_floor"`
	StallFloor              float64 `toml:"stall_floor"`
	DivergenceBound         float64 `toml:"divergence_bound"`
}

// ScanConfig shapes the multi-root search window.
type ScanConfig struct {
	HalfWidth       float64 `toml:"half_width"`
	Subintervals    int     `toml:"subintervals"`
	MaxSubintervals int     `toml:"max_subintervals"`
	MergeTolerance  float64 `toml:"merge_tolerance"`
	ResidualFactor  float64 `toml:"residual_factor"`
	Workers         int     `toml:"workers"`
}

// ServiceConfig bounds a single request.
type ServiceConfig struct {
	Timeout         Duration `toml:"timeout"`
	MaxPayloadBytes int      `toml:"max_payload_bytes"`
}

// LogConfig selects the log format: "auto" (terminal detection), "json" or
// "text".
type LogConfig struct {
	Format string `toml:"format"`
	Debug  bool   `toml:"debug"`
}

// Duration is a time.Duration written as text ("5s") in TOML.
type Duration struct{ time.Duration }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("config: duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	p := solve.DefaultPolicy()
	return &Config{
		Solver: SolverConfig{
			Tolerance:               p.Tolerance,
			MaxIterations:           p.MaxIterations,
			MaxIterationsUpperBound: p.MaxIterationsUpperBound,
			DerivativeFloor:         p.DerivativeFloor,
			StallFloor:              p.StallFloor,
			DivergenceBound:         p.DivergenceBound,
		},
		Scan: ScanConfig{
			HalfWidth:       p.HalfWidth,
			Subintervals:    p.Subintervals,
			MaxSubintervals: p.MaxSubintervals,
			MergeTolerance:  p.MergeTolerance,
			ResidualFactor:  p.ResidualFactor,
			Workers:         runtime.GOMAXPROCS(0),
		},
		Service: ServiceConfig{
			Timeout:         Duration{10 * time.Second},
			MaxPayloadBytes: 1 << 20,
		},
		Log: LogConfig{Format: "auto"},
	}
}

// SetDefaults fills zero-valued fields from Default. Explicit zeros for
// floors are kept since zero disables those guards.
func (c *Config) SetDefaults() {
	d := Default()
	setF := func(dst *float64, v float64) {
		if *dst == 0 {
			*dst = v
		}
	}
	setI := func(dst *int, v int) {
		if *dst == 0 {
			*dst = v
		}
	}
	setF(&c.Solver.Tolerance, d.Solver.Tolerance)
	setI(&c.Solver.MaxIterations, d.Solver.MaxIterations)
	setI(&c.Solver.MaxIterationsUpperBound, d.Solver.MaxIterationsUpperBound)
	setF(&c.Solver.DivergenceBound, d.Solver.DivergenceBound)
	setF(&c.Scan.HalfWidth, d.Scan.HalfWidth)
	setI(&c.Scan.Subintervals, d.Scan.Subintervals)
	setI(&c.Scan.MaxSubintervals, d.Scan.MaxSubintervals)
	setF(&c.Scan.ResidualFactor, d.Scan.ResidualFactor)
	setI(&c.Scan.Workers, d.Scan.Workers)
	setI(&c.Service.MaxPayloadBytes, d.Service.MaxPayloadBytes)
	if c.Service.Timeout.Duration == 0 {
		c.Service.Timeout = d.Service.Timeout
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

// Load returns the configuration at path, or the defaults when path is
// empty, with environment overrides applied and validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML decodes the file at path over cfg and fills missing fields.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undec[0].String(), path)
	}
	cfg.SetDefaults()
	return nil
}

// Save writes cfg to path as TOML.
func Save(cfg *Config, path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer file.Close()
	return Write(file, cfg)
}

// Write encodes cfg as TOML with a short header.
func Write(w io.Writer, cfg *Config) error {
	if _, err := fmt.Fprintln(w, "# rootfind configuration"); err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

// ApplyEnvOverrides applies ROOTFIND_* variables from the process
// environment.
func (c *Config) ApplyEnvOverrides() error { return c.ApplyEnv(os.LookupEnv) }

// ApplyEnv applies overrides read through lookup. Malformed values are
// reported, not ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	floats := map[string]*float64{
		"TOLERANCE":        &c.Solver.Tolerance,
		"DIVERGENCE_BOUND": &c.Solver.DivergenceBound,
		"HALF_WIDTH":       &c.Scan.HalfWidth,
		"MERGE_TOLERANCE":  &c.Scan.MergeTolerance,
	}
	ints := map[string]*int{
		"MAX_ITERATIONS": &c.Solver.MaxIterations,
		"SUBINTERVALS":   &c.Scan.Subintervals,
		"WORKERS":        &c.Scan.Workers,
	}
	for key, dst := range floats {
		if v, ok := lookup(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
			}
			*dst = f
		}
	}
	for key, dst := range ints {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
			}
			*dst = n
		}
	}
	if v, ok := lookup(EnvPrefix + "TIMEOUT"); ok {
		if err := c.Service.Timeout.UnmarshalText([]byte(v)); err != nil {
			return err
		}
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok {
		c.Log.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvPrefix + "DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sDEBUG: %w", EnvPrefix, err)
		}
		c.Log.Debug = b
	}
	return nil
}

// Policy converts the solver and scan sections into a solve.Policy.
func (c *Config) Policy() solve.Policy {
	return solve.Policy{
		Tolerance:               c.Solver.Tolerance,
		MaxIterations:           c.Solver.MaxIterations,
		MaxIterationsUpperBound: c.Solver.MaxIterationsUpperBound,
		DerivativeFloor:         c.Solver.DerivativeFloor,
		StallFloor:              c.Solver.StallFloor,
		DivergenceBound:         c.Solver.DivergenceBound,
		HalfWidth:               c.Scan.HalfWidth,
		Subintervals:            c.Scan.Subintervals,
		MaxSubintervals:         c.Scan.MaxSubintervals,
		MergeTolerance:          c.Scan.MergeTolerance,
		ResidualFactor:          c.Scan.ResidualFactor,
		Workers:                 c.Scan.Workers,
	}
}
