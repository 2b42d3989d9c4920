// Package demos serves the interactive demo gallery: a sidebar of static pages
// and two demos that recompute their results on every request.
package demos

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osa911/portfolio/internal/api/handlers"
	"github.com/osa911/portfolio/internal/api/middleware"
	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/sentiment"
	"github.com/osa911/portfolio/internal/server"
	"github.com/osa911/portfolio/internal/server/routes"
	"github.com/osa911/portfolio/internal/telemetry"
	"github.com/osa911/portfolio/internal/version"
)

// Server is the demo gallery HTTP server
type Server struct {
	router  *gin.Engine
	cfg     *config.DemosConfig
	tracing *telemetry.Tracing
}

// NewServer builds the gallery. A nil tracing disables request spans.
func NewServer(cfg *config.DemosConfig, tracing *telemetry.Tracing) (*Server, error) {
	if tracing == nil {
		tracing = &telemetry.Tracing{}
	}

	server.ConfigureGin(cfg.Environment == "production")

	analyzer, err := sentiment.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load sentiment lexicon: %w", err)
	}
	markdown, err := renderMarkdown(contentFS)
	if err != nil {
		return nil, err
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	routes.SetupGlobalMiddleware(router, routes.GlobalMiddleware{
		Logger:   logging.GetGlobalLogger(),
		Tracing:  tracing,
		Security: middleware.DemosSecurityOptions,
	})

	h := NewHandlers(analyzer, markdown, cfg.Seed)
	setupRoutes(router, h, handlers.NewHealthHandler(version.DemosServiceName, version.APIVersion))

	return &Server{router: router, cfg: cfg, tracing: tracing}, nil
}

func setupRoutes(router *gin.Engine, h *Handlers, health *handlers.HealthHandler) {
	router.GET("/", h.StaticPage("overview"))
	for _, p := range Pages {
		switch p.Slug {
		case "text-analysis":
			router.GET(p.Path, h.TextAnalysis)
		case "data-visualization":
			router.GET(p.Path, h.DataVisualization)
		default:
			router.GET(p.Path, h.StaticPage(p.Slug))
		}
	}

	chartRoutes := router.Group("/charts")
	chartRoutes.GET("/sentiment", h.SentimentChart)
	chartRoutes.GET("/dataset", h.DatasetChart)

	routes.SetupHealthRoutes(router, health)
	router.NoRoute(h.NotFound)
}

// Handler returns the HTTP handler serving the gallery
func (s *Server) Handler() http.Handler {
	return routes.StripTrailingSlash(s.router)
}

// Start serves on the configured port until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	err := server.ListenAndServe(ctx, srv, server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()
	if tErr := s.tracing.Shutdown(shutdownCtx); tErr != nil {
		logging.GetGlobalLogger().Warn("Failed to flush traces: %v", tErr)
	}

	return err
}
