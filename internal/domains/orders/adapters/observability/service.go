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

	"github.com/Apurer/scanpack-api/internal/domains/orders/application"
	orderstypes "github.com/Apurer/scanpack-api/internal/domains/orders/application/types"
	"github.com/Apurer/scanpack-api/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/scanpack-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order lookup port with tracing, logging, and metrics.
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

// LookupOrder resolves and enriches an order with instrumentation.
func (s *Service) LookupOrder(ctx context.Context, input orderstypes.LookupOrderInput) (*orderstypes.OrderProjection, error) {
	mode := searchMode(input.Identifier)
	ctx, span := s.startSpan(ctx, "Service.LookupOrder",
		attribute.String("order.identifier", input.Identifier),
		attribute.String("order.search_mode", mode),
	)
	defer span.End()

	s.logInfo(ctx, "looking up order", slog.String("identifier", input.Identifier), slog.String("mode", mode))
	result, err := s.inner.LookupOrder(ctx, input)
	if err != nil {
		s.metrics.recordLookup(ctx, mode, "error")
		return nil, s.handleError(ctx, span, err, "order lookup failed", slog.String("identifier", input.Identifier))
	}
	span.SetAttributes(
		attribute.Int64("order.id", result.OrderID),
		attribute.Int("order.line_items", len(result.LineItems)),
	)
	s.metrics.recordLookup(ctx, mode, "ok")
	s.logInfo(ctx, "order resolved",
		slog.Int64("order.id", result.OrderID),
		slog.String("order.name", result.OrderName),
		slog.Int("line_items", len(result.LineItems)),
	)
	return result, nil
}

func searchMode(identifier string) string {
	if application.IsOrderNameIdentifier(identifier) {
		return "order_name"
	}
	return "tracking_number"
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
	lookups metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	lookups, _ := m.Int64Counter("orders.service.lookups", metric.WithDescription("Number of order lookups"))
	return serviceMetrics{lookups: lookups}
}

func (m serviceMetrics) recordLookup(ctx context.Context, mode, outcome string) {
	if m.lookups == nil {
		return
	}
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("order.search_mode", mode),
		attribute.String("outcome", outcome),
	))
}

var _ ports.Service = (*Service)(nil)
