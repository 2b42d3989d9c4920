package telemetry

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/logging"
)

// Tracing owns the tracer provider of one server process. The zero value is
// disabled: its middleware passes requests through and Shutdown is a no-op.
type Tracing struct {
	provider    *sdktrace.TracerProvider
	serviceName string
}

// Setup exports request spans over OTLP/gRPC when cfg.Enabled is set and
// installs the provider globally.
func Setup(ctx context.Context, serviceName, serviceVersion string, cfg config.TracingConfig) (*Tracing, error) {
	if !cfg.Enabled {
		return &Tracing{serviceName: serviceName}, nil
	}

	exporterOpts := []otlptracegrpc.Option{}
	switch {
	case strings.Contains(cfg.Endpoint, "://"):
		exporterOpts = append(exporterOpts, otlptracegrpc.WithEndpointURL(cfg.Endpoint))
	case cfg.Endpoint != "":
		exporterOpts = append(exporterOpts, otlptracegrpc.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		exporterOpts = append(exporterOpts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	tracing, err := newTracing(serviceName, serviceVersion, cfg.SampleRatio, sdktrace.WithBatcher(exporter))
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(tracing.provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	logging.GetGlobalLogger().Info("Tracing enabled for %s (sample ratio %.2f)", serviceName, cfg.SampleRatio)
	return tracing, nil
}

func newTracing(serviceName, serviceVersion string, sampleRatio float64, exportOpt sdktrace.TracerProviderOption) (*Tracing, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build trace resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		exportOpt,
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
	)

	return &Tracing{provider: provider, serviceName: serviceName}, nil
}

// Enabled reports whether spans are being recorded
func (t *Tracing) Enabled() bool {
	return t != nil && t.provider != nil
}

// Middleware starts one server span per request
func (t *Tracing) Middleware() gin.HandlerFunc {
	if !t.Enabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return otelgin.Middleware(t.serviceName, otelgin.WithTracerProvider(t.provider))
}

// Shutdown flushes pending spans
func (t *Tracing) Shutdown(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
