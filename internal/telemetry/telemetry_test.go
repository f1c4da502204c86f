package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/rootfind/internal/telemetry"
)

// TestClueLogger_WritesToContextOutput checks that log lines land on the
// writer configured through LogContext. The error line flushes any
// buffered info lines.
func TestClueLogger_WritesToContextOutput(t *testing.T) {
	var buf bytes.Buffer
	ctx := telemetry.LogContext(context.Background(), "json", false, &buf)

	logger := telemetry.NewClueLogger()
	logger.Info(ctx, "solve finished", "request_id", "abc-123", "iterations", 5)
	logger.Error(ctx, "next request failed", "err", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "solve finished", "message must be logged")
	assert.Contains(t, out, "abc-123", "key/value pairs must be logged")
}

// TestClueLogger_Debug verifies debug lines appear when enabled.
func TestClueLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	ctx := telemetry.LogContext(context.Background(), "json", true, &buf)

	logger := telemetry.NewClueLogger()
	logger.Debug(ctx, "shown")
	logger.Error(ctx, "flush")

	assert.Contains(t, buf.String(), "shown", "debug must be emitted when enabled")
}

// TestClueLogger_ErrorValue ensures an error among keyvals is reported.
func TestClueLogger_ErrorValue(t *testing.T) {
	var buf bytes.Buffer
	ctx := telemetry.LogContext(context.Background(), "text", false, &buf)

	telemetry.NewClueLogger().Error(ctx, "solve failed", "err", errors.New("boom"))

	assert.Contains(t, buf.String(), "boom", "error text must be logged")
}

// TestClueMetricsAndTracer_GlobalProviders exercises the OTEL-backed
// implementations against the default (no-op) global providers.
func TestClueMetricsAndTracer_GlobalProviders(t *testing.T) {
	tel := telemetry.New()
	require.NotPanics(t, func() {
		tel.Metrics.IncCounter("rootfind.test.count", 1, "method", "newton")
		tel.Metrics.RecordTimer("rootfind.test.duration", 3*time.Millisecond, "method", "newton")
		tel.Metrics.RecordGauge("rootfind.test.gauge", 7, "odd")

		ctx, span := tel.Tracer.Start(context.Background(), "rootfind.test")
		require.NotNil(t, ctx)
		span.AddEvent("iteration", "n", 1, "x", 1.5, "ok", true, "status", "running", "err", errors.New("e"))
		span.SetStatus(codes.Ok, "")
		span.RecordError(errors.New("boom"))
		span.End()
	}, "global-provider telemetry must never panic")
}

// TestNoop_Discards checks the no-op bundle is usable end to end.
func TestNoop_Discards(t *testing.T) {
	tel := telemetry.Noop()
	ctx := context.Background()
	tel.Logger.Info(ctx, "ignored", "k", "v")
	tel.Metrics.IncCounter("x", 1)
	got, span := tel.Tracer.Start(ctx, "noop")
	span.End()
	assert.Equal(t, ctx, got, "noop tracer must return the context unchanged")
}
