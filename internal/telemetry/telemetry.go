// Package telemetry wires chunkrun's tracing: map builds, simulation frames
// and headless runs report spans through the global OpenTelemetry provider.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

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
	serviceName    = "chunkrun"
	serviceVersion = "0.1.0"

	defaultEndpoint = "https://api.honeycomb.io"
	defaultDataset  = "chunkrun"
)

// ConfigureEnv fills the OTEL_EXPORTER_OTLP_* variables the exporter reads
// from the HONEYCOMB_CHUNKRUN_* ones. Values already set are left alone.
func ConfigureEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", defaultEndpoint)
	}

	// .env may carry an unexpanded reference, so headers are built here.
	apiKey := os.Getenv("HONEYCOMB_CHUNKRUN_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") != "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_CHUNKRUN_DATASET")
	if dataset == "" {
		dataset = defaultDataset
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

// Setup starts batching spans to the OTLP HTTP endpoint and makes that the
// global provider. The returned func flushes and stops it.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := newResource(ctx)
	if err != nil {
		return nil, fmt.Errorf("trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}

// newResource describes this process. It is built standalone; merging with
// resource.Default() fails when the schema URLs differ.
func newResource(ctx context.Context) (*resource.Resource, error) {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", host),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
}

// Disable routes spans nowhere. Used when tracing is off in config or when
// Setup fails.
func Disable() func(context.Context) error {
	otel.SetTracerProvider(noop.NewTracerProvider())
	return func(context.Context) error { return nil }
}

// Tracer is the tracer for one chunkrun package, e.g. Tracer("world").
func Tracer(pkg string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + pkg)
}
