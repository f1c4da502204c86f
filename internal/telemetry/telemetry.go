// Package telemetry defines the logging, metrics and tracing surfaces used
// by the service layer, with goa.design/clue + OpenTelemetry
// implementations and no-op implementations for tests.
package telemetry

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"goa.design/clue/log"
)

type (
	// Logger emits structured log lines; keyvals alternate key, value.
	Logger interface {
		Debug(ctx context.Context, msg string, keyvals ...any)
		Info(ctx context.Context, msg string, keyvals ...any)
		Warn(ctx context.Context, msg string, keyvals ...any)
		Error(ctx context.Context, msg string, keyvals ...any)
	}

	// Metrics records counters and timers; tags alternate key, value.
	Metrics interface {
		IncCounter(name string, value float64, tags ...string)
		RecordTimer(name string, d time.Duration, tags ...string)
		RecordGauge(name string, value float64, tags ...string)
	}

	// Tracer starts spans.
	Tracer interface {
		Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, Span)
	}

	// Span is the subset of trace.Span the service uses.
	Span interface {
		End(opts ...trace.SpanEndOption)
		AddEvent(name string, attrs ...any)
		SetStatus(code codes.Code, description string)
		RecordError(err error, opts ...trace.EventOption)
	}

	// Telemetry bundles the three surfaces.
	Telemetry struct {
		Logger  Logger
		Metrics Metrics
		Tracer  Tracer
	}
)

// New returns clue logging with OpenTelemetry metrics and tracing from the
// global providers.
func New() Telemetry {
	return Telemetry{Logger: NewClueLogger(), Metrics: NewClueMetrics(), Tracer: NewClueTracer()}
}

// Noop returns a Telemetry that discards everything.
func Noop() Telemetry {
	return Telemetry{Logger: NoopLogger{}, Metrics: NoopMetrics{}, Tracer: NoopTracer{}}
}

// LogContext configures the clue logger carried by ctx. format is "json",
// "text" or "auto" (terminal detection); w may be nil for stderr.
func LogContext(ctx context.Context, format string, debug bool, w io.Writer) context.Context {
	f := log.FormatJSON
	switch format {
	case "text":
		f = log.FormatText
	case "auto", "":
		if log.IsTerminal() {
			f = log.FormatTerminal
		}
	}
	opts := []log.LogOption{log.WithFormat(f)}
	if w != nil {
		opts = append(opts, log.WithOutput(w))
	}
	ctx = log.Context(ctx, opts...)
	if debug {
		ctx = log.Context(ctx, log.WithDebug())
	}
	return ctx
}
