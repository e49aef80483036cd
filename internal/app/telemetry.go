package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const serviceName = "promptly-mcp"

// SetupTelemetry installs an OTLP/HTTP tracer provider when
// OTEL_EXPORTER_OTLP_ENDPOINT is set. The exporter reads the standard OTEL_*
// variables itself. The returned function flushes and stops the provider.
func SetupTelemetry(ctx context.Context) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	if GetEnvAsString(ctx, "OTEL_EXPORTER_OTLP_ENDPOINT", "") == "" &&
		GetEnvAsString(ctx, "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "") == "" {
		return noop, nil
	}

	res, err := resource.New(ctx,
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(domain.Version),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("building telemetry resource: %w", err)
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithTimeout(10*time.Second))
	if err != nil {
		return noop, fmt.Errorf("starting trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))

	domain.LoggerFromContext(ctx).InfoContext(ctx, "tracing enabled", "exporter", "otlp_http")

	return provider.Shutdown, nil
}
