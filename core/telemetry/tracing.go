package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/anoideaopen/fna"

// TracingHandler starts the spans of wrapper invocations.
type TracingHandler struct {
	Tracer trace.Tracer
}

// NewTracingHandler creates a handler on tp. A nil tp means the global provider.
func NewTracingHandler(tp trace.TracerProvider) *TracingHandler {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &TracingHandler{
		Tracer: tp.Tracer(instrumentationName),
	}
}

// StartNewSpan starts new span
func (th *TracingHandler) StartNewSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	return th.Tracer.Start(ctx, spanName, opts...)
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
