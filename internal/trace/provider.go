package trace

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// DefaultServiceName is reported when no service name is configured.
const DefaultServiceName = "focuskit"

// Config selects where focus spans are exported.
type Config struct {
	ServiceName  string
	OTLPEndpoint string    // host:port of an OTLP/HTTP collector; falls back to OTEL_EXPORTER_OTLP_ENDPOINT
	Insecure     bool      // plain HTTP to the collector
	Stdout       io.Writer // when set, spans are also written as JSON
}

// NewProvider builds a tracer provider for cfg.
// Returns nil when no exporter is configured (disabled).
func NewProvider(ctx context.Context, cfg Config) (*sdktrace.TracerProvider, error) {
	endpoint := cfg.OTLPEndpoint
	if endpoint == "" {
		endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	if endpoint == "" && cfg.Stdout == nil {
		return nil, nil // Disabled
	}

	var opts []sdktrace.TracerProviderOption
	if endpoint != "" {
		httpOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
		if cfg.Insecure {
			httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
		}
		exporter, err := otlptracehttp.New(ctx, httpOpts...)
		if err != nil {
			return nil, fmt.Errorf("otlp exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}
	if cfg.Stdout != nil {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(cfg.Stdout))
		if err != nil {
			return nil, fmt.Errorf("stdout exporter: %w", err)
		}
		// Synchronous so the file is complete when the program exits.
		opts = append(opts, sdktrace.WithSyncer(exporter))
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = os.Getenv("OTEL_SERVICE_NAME")
	}
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	opts = append(opts, sdktrace.WithResource(res))

	return sdktrace.NewTracerProvider(opts...), nil
}
