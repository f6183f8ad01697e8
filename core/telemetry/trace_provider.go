package telemetry

import (
	"context"
	"fmt"

	"github.com/anoideaopen/fna/version"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstallTraceProvider installs a global trace provider based on the http otlp exporter.
// It is meant to be called once per process. An empty endpoint installs a noop
// provider. The installed provider is returned even when building the exporter
// fails, in which case it is the noop provider.
//
// shutdown flushes buffered spans and stops the exporter; it is never nil.
func InstallTraceProvider(
	endpoint string,
	serviceName string,
) (tp trace.TracerProvider, shutdown func(context.Context) error, err error) {
	var tracerProvider trace.TracerProvider = noop.NewTracerProvider()
	shutdown = func(context.Context) error { return nil }

	defer func() {
		otel.SetTracerProvider(tracerProvider)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	}()

	if endpoint == "" {
		return tracerProvider, shutdown, nil
	}

	client := otlptracehttp.NewClient(
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	exporter, err := otlptrace.New(context.Background(), client)
	if err != nil {
		return tracerProvider, shutdown, fmt.Errorf("creating OTLP trace exporter: %w", err)
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version.Module())))
	if err != nil {
		return tracerProvider, shutdown, fmt.Errorf("creating resource: %w", err)
	}

	sdkProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(r))

	tracerProvider = sdkProvider

	return tracerProvider, sdkProvider.Shutdown, nil
}
