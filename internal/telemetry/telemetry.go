// Package telemetry exports game traces to Honeycomb over OTLP/HTTP.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "asciisnake"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Environment variables naming the Honeycomb team key and dataset.
const (
	EnvAPIKey  = "HONEYCOMB_ASCIISNAKE_API_KEY"
	EnvDataset = "HONEYCOMB_ASCIISNAKE_DATASET"
)

// ConfigureHoneycomb translates the Honeycomb variables into the standard
// OTEL_EXPORTER_OTLP_* variables read by the exporter. It reports whether an
// API key is present; without one there is nothing to export to.
func ConfigureHoneycomb() bool {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return false
	}
	dataset := os.Getenv(EnvDataset)
	if dataset == "" {
		dataset = serviceName
	}

	// A .env file may hold an unexpanded reference, so the header is built here
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombEndpoint)
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}

// Setup installs a batching tracer provider as the global provider.
// The logger receives the SDK's own diagnostics, export failures included.
// The returned shutdown flushes pending spans and must be called on exit.
func Setup(ctx context.Context, logger logr.Logger) (shutdown func(context.Context) error, err error) {
	otel.SetLogger(logger)

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes this process. resource.Default() is not merged in
// because its schema URL can conflict with ours.
func newResource(ctx context.Context) (*resource.Resource, error) {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", host),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
}

// Tracer returns a tracer from the global provider, which hands out no-op
// tracers until Setup succeeds.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}
