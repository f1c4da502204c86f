// Package service is the request boundary around the solve package: it
// decodes and schema-checks request documents, applies the configured
// policy and deadline, and records logs, spans and metrics per request.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/rootfind/internal/config"
	"github.com/katalvlaran/rootfind/internal/telemetry"
	"github.com/katalvlaran/rootfind/solve"
	rtrace "github.com/katalvlaran/rootfind/trace"
)

var (
	// ErrPayloadTooLarge is returned when a document exceeds
	// service.max_payload_bytes.
	ErrPayloadTooLarge = errors.New("service: payload too large")

	// ErrInvalidPayload wraps decode and schema failures.
	ErrInvalidPayload = errors.New("service: invalid payload")

	// ErrUnsupportedFormat is returned for an unknown document format.
	ErrUnsupportedFormat = errors.New("service: unsupported format")
)

// Metric names.
const (
	MetricSolveRequests   = "rootfind.solve.requests"
	MetricSolveDuration   = "rootfind.solve.duration"
	MetricSolveIterations = "rootfind.solve.iterations"
	MetricScanRoots       = "rootfind.scan.roots"
	MetricEvaluatePoints  = "rootfind.evaluate.points"
)

// Service runs solve and evaluate requests under one configuration.
type Service struct {
	cfg            *config.Config
	policy         solve.Policy
	tel            telemetry.Telemetry
	solveSchema    *jsonschema.Schema
	evaluateSchema *jsonschema.Schema
}

// New validates cfg and compiles the embedded request schemas.
func New(cfg *config.Config, tel telemetry.Telemetry) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy := cfg.Policy()
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if tel.Logger == nil || tel.Metrics == nil || tel.Tracer == nil {
		tel = telemetry.Noop()
	}
	s := &Service{cfg: cfg, policy: policy, tel: tel}
	var err error
	if s.solveSchema, err = compileSchema("solve.json"); err != nil {
		return nil, err
	}
	if s.evaluateSchema, err = compileSchema("evaluate.json"); err != nil {
		return nil, err
	}
	return s, nil
}

// Policy returns the solver policy derived from the configuration.
func (s *Service) Policy() solve.Policy { return s.policy }

// Solve runs req under the configured deadline. Numerical failures are
// reported in the response status; errors are validation failures, parse
// errors or deadline expiry.
func (s *Service) Solve(ctx context.Context, req solve.Request) (*solve.Response, error) {
	id := uuid.NewString()
	method := string(req.Method)
	if method == "" {
		method = string(solve.Newton)
	}
	if d := s.cfg.Service.Timeout.Duration; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	ctx, span := s.tel.Tracer.Start(ctx, "rootfind.solve",
		trace.WithAttributes(
			attribute.String("request.id", id),
			attribute.String("solve.method", method),
			attribute.String("solve.equation", req.Equation),
		))
	defer span.End()

	s.tel.Logger.Info(ctx, "solve started", "request_id", id, "method", method, "equation", req.Equation)
	start := time.Now()

	observer := func(r rtrace.Record) error {
		span.AddEvent("iteration", "n", r.Iteration, "x", r.X, "status", r.Status.String())
		return nil
	}
	resp, err := solve.Solve(ctx, req, solve.WithPolicy(s.policy), solve.WithObserver(observer))
	elapsed := time.Since(start)
	s.tel.Metrics.RecordTimer(MetricSolveDuration, elapsed, "method", method)

	if err != nil {
		outcome := "invalid"
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			outcome = "timeout"
		}
		s.tel.Metrics.IncCounter(MetricSolveRequests, 1, "method", method, "outcome", outcome)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.tel.Logger.Warn(ctx, "solve rejected", "request_id", id, "method", method, "err", err, "duration", elapsed.String())
		return nil, fmt.Errorf("solve %s: %w", id, err)
	}

	status := resp.Status.String()
	s.tel.Metrics.IncCounter(MetricSolveRequests, 1, "method", method, "outcome", status)
	s.tel.Metrics.RecordGauge(MetricSolveIterations, float64(resp.IterationsCount), "method", method)
	s.tel.Metrics.RecordGauge(MetricScanRoots, float64(len(resp.Roots)), "method", method)
	if resp.Converged {
		span.SetStatus(codes.Ok, status)
	} else {
		span.SetStatus(codes.Unset, status)
	}
	s.tel.Logger.Info(ctx, "solve finished",
		"request_id", id,
		"method", method,
		"status", status,
		"iterations", resp.IterationsCount,
		"roots", len(resp.Roots),
		"duration", elapsed.String())
	return resp, nil
}

// Evaluate samples the equation at the requested points. It never fails;
// problems are reported in the response.
func (s *Service) Evaluate(ctx context.Context, req solve.EvaluateRequest) solve.EvaluateResponse {
	id := uuid.NewString()
	ctx, span := s.tel.Tracer.Start(ctx, "rootfind.evaluate",
		trace.WithAttributes(
			attribute.String("request.id", id),
			attribute.Int("evaluate.points", len(req.XValues)),
		))
	defer span.End()

	resp := solve.Evaluate(req)
	s.tel.Metrics.IncCounter(MetricEvaluatePoints, float64(len(resp.Points)), "success", fmt.Sprint(resp.Success))
	if !resp.Success {
		span.SetStatus(codes.Error, resp.Message)
	}
	s.tel.Logger.Debug(ctx, "evaluate finished", "request_id", id, "points", len(resp.Points), "success", resp.Success)
	return resp
}
