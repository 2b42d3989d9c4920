package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/osa911/portfolio/internal/config"
)

func serve(t *testing.T, handler gin.HandlerFunc) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handler)
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSetupDisabled(t *testing.T) {
	tracing, err := Setup(context.Background(), "portfolio-api", "1.0.0", config.TracingConfig{})
	require.NoError(t, err)

	assert.False(t, tracing.Enabled())
	serve(t, tracing.Middleware())
	assert.NoError(t, tracing.Shutdown(context.Background()))
}

func TestMiddlewareRecordsRequestSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tracing, err := newTracing("portfolio-api", "1.0.0", 1, sdktrace.WithSyncer(exporter))
	require.NoError(t, err)
	defer tracing.Shutdown(context.Background())

	require.True(t, tracing.Enabled())
	serve(t, tracing.Middleware())

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	var service string
	for _, kv := range spans[0].Resource.Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "portfolio-api", service)
}

func TestZeroSampleRatioRecordsNothing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tracing, err := newTracing("portfolio-api", "1.0.0", 0, sdktrace.WithSyncer(exporter))
	require.NoError(t, err)
	defer tracing.Shutdown(context.Background())

	serve(t, tracing.Middleware())
	assert.Empty(t, exporter.GetSpans())
}
