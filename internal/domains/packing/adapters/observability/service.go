package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/scanpack-api/internal/domains/packing/ports"
)

const tracerName = "github.com/Apurer/scanpack-api/internal/domains/packing/adapters/observability/service"

// Service decorates the packing port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// MarkPacked applies the daily packing tag with instrumentation.
func (s *Service) MarkPacked(ctx context.Context, orderID int64) (*ports.PackResult, error) {
	ctx, span := s.startSpan(ctx, "Service.MarkPacked", attribute.Int64("order.id", orderID))
	defer span.End()

	s.logInfo(ctx, "marking order packed", slog.Int64("order.id", orderID))
	result, err := s.inner.MarkPacked(ctx, orderID)
	if err != nil {
		s.metrics.recordPack(ctx, "error")
		return nil, s.handleError(ctx, span, err, "failed to mark order packed", slog.Int64("order.id", orderID))
	}
	span.SetAttributes(attribute.String("pack.tag", result.Tag))
	s.metrics.recordPack(ctx, "ok")
	s.logInfo(ctx, "order marked packed", slog.Int64("order.id", orderID), slog.String("tag", result.Tag))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	packs metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	packs, _ := m.Int64Counter("packing.service.marks", metric.WithDescription("Number of pack tag operations"))
	return serviceMetrics{packs: packs}
}

func (m serviceMetrics) recordPack(ctx context.Context, outcome string) {
	if m.packs == nil {
		return
	}
	m.packs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

var _ ports.Service = (*Service)(nil)
