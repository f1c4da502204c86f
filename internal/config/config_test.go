package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/rootfind/internal/config"
	"github.com/katalvlaran/rootfind/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rootfind.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func noEnv(string) (string, bool) { return "", false }

// TestDefault_MatchesPolicy keeps config defaults aligned with solve.
func TestDefault_MatchesPolicy(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	want := solve.DefaultPolicy()
	got := cfg.Policy()
	got.Workers, want.Workers = 0, 0
	assert.Equal(t, want, got)
	assert.Equal(t, 10*time.Second, cfg.Service.Timeout.Duration)
	assert.Equal(t, "auto", cfg.Log.Format)
}

// TestLoad_File decodes a partial file over the defaults.
func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
[solver]
tolerance = 1e-9
max_iterations = 50

[scan]
half_width = 25.0
workers = 2

[service]
timeout = "750ms"

[log]
format = "json"
debug = true
`)
	cfg := config.Default()
	require.NoError(t, config.LoadTOML(cfg, path))
	require.NoError(t, cfg.ApplyEnv(noEnv))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1e-9, cfg.Solver.Tolerance)
	assert.Equal(t, 50, cfg.Solver.MaxIterations)
	assert.Equal(t, 25.0, cfg.Scan.HalfWidth)
	assert.Equal(t, 200, cfg.Scan.Subintervals)
	assert.Equal(t, 2, cfg.Policy().Workers)
	assert.Equal(t, 750*time.Millisecond, cfg.Service.Timeout.Duration)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.Debug)
}

// TestLoad_RejectsUnknownKeys and malformed files.
func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := config.Load(writeFile(t, "[solver]\ntolerence = 1e-3\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "[solver\n"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

// TestApplyEnv overrides and reports malformed values.
func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"ROOTFIND_TOLERANCE":      "1e-8",
		"ROOTFIND_MAX_ITERATIONS": "42",
		"ROOTFIND_HALF_WIDTH":     "3.5",
		"ROOTFIND_TIMEOUT":        "2s",
		"ROOTFIND_LOG_FORMAT":     "TEXT",
		"ROOTFIND_DEBUG":          "true",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 1e-8, cfg.Solver.Tolerance)
	assert.Equal(t, 42, cfg.Solver.MaxIterations)
	assert.Equal(t, 3.5, cfg.Scan.HalfWidth)
	assert.Equal(t, 2*time.Second, cfg.Service.Timeout.Duration)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Log.Debug)

	env = map[string]string{"ROOTFIND_WORKERS": "many"}
	assert.Error(t, config.Default().ApplyEnv(lookup))
	env = map[string]string{"ROOTFIND_TIMEOUT": "soon"}
	assert.Error(t, config.Default().ApplyEnv(lookup))
}

// TestApplyEnvOverrides reads the process environment.
func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("ROOTFIND_SUBINTERVALS", "400")
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Scan.Subintervals)
}

// TestValidate lists every invalid field.
func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Solver.Tolerance = -1
	cfg.Solver.MaxIterations = 0
	cfg.Scan.Subintervals = 1
	cfg.Scan.Workers = 0
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	var verrs config.ValidateErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{
		"solver.tolerance",
		"solver.max_iterations",
		"scan.subintervals",
		"scan.workers",
		"log.format",
	}, verrs.Fields())
}

// TestSave_RoundTrip writes and reloads a configuration.
func TestSave_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Scan.HalfWidth = 7
	cfg.Service.Timeout.Duration = 3 * time.Second

	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, config.Save(cfg, path))

	back := config.Default()
	require.NoError(t, config.LoadTOML(back, path))
	assert.Equal(t, cfg, back)

	var buf bytes.Buffer
	require.NoError(t, config.Write(&buf, cfg))
	assert.Contains(t, buf.String(), `timeout = "3s"`)
	assert.Contains(t, buf.String(), "[scan]")
}
