package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/osa911/portfolio/internal/api/handlers"
	"github.com/osa911/portfolio/internal/api/middleware"
	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/server/routes"
	"github.com/osa911/portfolio/internal/service"
	"github.com/osa911/portfolio/internal/telemetry"
	"github.com/osa911/portfolio/internal/version"
)

// Server represents the portfolio API server
type Server struct {
	router         *gin.Engine
	cfg            *config.Config
	contactLimiter *middleware.ClientRateLimiter
	tracing        *telemetry.Tracing
}

// NewServer creates a new server instance that delivers contact submissions through mailer
func NewServer(cfg *config.Config, mailer service.ContactMailer, opts ...Option) (*Server, error) {
	options := options{tracing: &telemetry.Tracing{}}
	for _, opt := range opts {
		opt(&options)
	}

	ConfigureGin(cfg.IsProduction())

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	limiter := middleware.NewClientRateLimiter(middleware.RateLimitConfig{
		Requests: cfg.ContactRateLimit,
		Window:   cfg.ContactRateWindow,
	})
	if options.now != nil {
		limiter.SetClock(options.now)
	}

	logger := logging.GetGlobalLogger()
	routes.SetupGlobalMiddleware(router, routes.GlobalMiddleware{
		Logger:  logger,
		Tracing: options.tracing,
		CORS: &middleware.CORSConfig{
			AllowedOrigins: cfg.AllowedOrigins,
			Development:    !cfg.IsProduction(),
		},
		Security:    middleware.APISecurityOptions,
		MaxBodySize: middleware.DefaultMaxBodySize,
	})

	routes.Setup(router,
		&routes.Handlers{
			Contact: handlers.NewContactHandler(mailer),
			Health:  handlers.NewHealthHandler(version.APIServiceName, version.APIVersion),
		},
		&routes.Middleware{
			Validation:     middleware.NewValidationMiddleware(),
			ContactLimiter: limiter,
		},
	)

	return &Server{
		router:         router,
		cfg:            cfg,
		contactLimiter: limiter,
		tracing:        options.tracing,
	}, nil
}

// Handler returns the HTTP handler serving all API routes
func (s *Server) Handler() http.Handler {
	return routes.StripTrailingSlash(s.router)
}

// Start serves on the configured port until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	go s.contactLimiter.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	err := ListenAndServe(ctx, srv, ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if tErr := s.tracing.Shutdown(shutdownCtx); tErr != nil {
		logging.GetGlobalLogger().Warn("Failed to flush traces: %v", tErr)
	}

	return err
}

// ShutdownTimeout bounds graceful shutdown of the HTTP servers
const ShutdownTimeout = 10 * time.Second

// ListenAndServe runs srv until ctx is cancelled and then drains in-flight
// requests for at most timeout.
func ListenAndServe(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	logger := logging.GetGlobalLogger()

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening on %s", listener.Addr())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	<-errCh

	logger.Info("Server stopped")
	return nil
}

// ConfigureGin sets the gin mode and silences gin's own writers; requests are
// logged through the project logger instead.
func ConfigureGin(production bool) {
	if production {
		gin.SetMode(gin.ReleaseMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard
}
