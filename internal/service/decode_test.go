package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/derivative"
	"github.com/katalvlaran/rootfind/internal/config"
	"github.com/katalvlaran/rootfind/internal/service"
	"github.com/katalvlaran/rootfind/solve"
)

// TestDecodeSolve_JSON decodes a complete JSON request.
func TestDecodeSolve_JSON(t *testing.T) {
	svc, _ := newService(t, nil)

	req, err := svc.DecodeSolve([]byte(`{
		"equation": "x**3 - 5*x + 3",
		"method": "secant",
		"initial_guess": 0,
		"x1": 1,
		"tolerance": 1e-8,
		"max_iterations": 50,
		"derivative": "numeric"
	}`), service.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, solve.Secant, req.Method)
	require.NotNil(t, req.X1)
	assert.Equal(t, 1.0, *req.X1)
	require.NotNil(t, req.Tolerance)
	assert.Equal(t, 1e-8, *req.Tolerance)
	require.NotNil(t, req.MaxIterations)
	assert.Equal(t, 50, *req.MaxIterations)
	assert.Equal(t, derivative.Numeric, req.Derivative)
	assert.Nil(t, req.SearchRange, "absent optional fields must stay nil")
}

// TestDecodeSolve_YAML decodes the same shape from YAML.
func TestDecodeSolve_YAML(t *testing.T) {
	svc, _ := newService(t, nil)

	req, err := svc.DecodeSolve([]byte("equation: x**2 - 4\nmethod: bisection\ninitial_guess: 0\nx1: 5\nnum_search_points: 50\n"), service.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "x**2 - 4", req.Equation)
	assert.Equal(t, solve.Bisection, req.Method)
	require.NotNil(t, req.Subintervals)
	assert.Equal(t, 50, *req.Subintervals)
}

// TestDecodeSolve_SchemaRejections lists documents the schema must refuse.
func TestDecodeSolve_SchemaRejections(t *testing.T) {
	svc, _ := newService(t, nil)

	cases := map[string]string{
		"missing equation": `{"initial_guess": 1}`,
		"empty equation":   `{"equation": ""}`,
		"unknown field":    `{"equation": "x", "guess": 1}`,
		"unknown method":   `{"equation": "x", "method": "halley"}`,
		"string guess":     `{"equation": "x", "initial_guess": "one"}`,
		"fractional iters": `{"equation": "x", "max_iterations": 2.5}`,
		"bad derivative":   `{"equation": "x", "derivative": "exact"}`,
		"not json":         `{equation`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.DecodeSolve([]byte(doc), service.FormatJSON)
			assert.ErrorIs(t, err, service.ErrInvalidPayload, "document %s must be rejected", doc)
		})
	}
}

// TestDecodeEvaluate checks both a valid and an invalid evaluate document.
func TestDecodeEvaluate(t *testing.T) {
	svc, _ := newService(t, nil)

	req, err := svc.DecodeEvaluate([]byte(`{"equation": "log(x)", "x_values": [1, 2.5]}`), service.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5}, req.XValues)

	_, err = svc.DecodeEvaluate([]byte(`{"equation": "log(x)", "x_values": ["a"]}`), service.FormatJSON)
	assert.ErrorIs(t, err, service.ErrInvalidPayload, "non-numeric x_values must be rejected")
}

// TestDecode_PayloadLimit checks the configured size cap.
func TestDecode_PayloadLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Service.MaxPayloadBytes = 16
	svc, _ := newService(t, cfg)

	_, err := svc.DecodeSolve([]byte(`{"equation": "x**2 - 4", "initial_guess": 1}`), service.FormatJSON)
	assert.ErrorIs(t, err, service.ErrPayloadTooLarge)
}

// TestParseFormat covers accepted spellings and rejection.
func TestParseFormat(t *testing.T) {
	for in, want := range map[string]service.Format{"json": service.FormatJSON, "YAML": service.FormatYAML, "yml": service.FormatYAML, "": service.FormatJSON} {
		got, err := service.ParseFormat(in)
		require.NoError(t, err, "format %q must parse", in)
		assert.Equal(t, want, got)
	}
	_, err := service.ParseFormat("xml")
	assert.ErrorIs(t, err, service.ErrUnsupportedFormat)
}
