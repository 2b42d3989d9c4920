package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/api/middleware"
	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/telemetry"
)

// Setup configures all API routes
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	SetupHealthRoutes(router, h.Health)
	SetupContactRoutes(router, h.Contact, m)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrCodeNotFound, "Resource not found", nil))
	})

	logging.GetGlobalLogger().Info("All routes have been set up successfully")
}

// GlobalMiddleware selects the middleware applied to every route. Nil or zero
// fields leave the corresponding middleware out.
type GlobalMiddleware struct {
	Logger      *logging.Logger
	Tracing     *telemetry.Tracing
	CORS        *middleware.CORSConfig
	Security    middleware.SecurityOptions
	MaxBodySize int64
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg GlobalMiddleware) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	if cfg.Tracing != nil {
		router.Use(cfg.Tracing.Middleware())
	}
	if cfg.Logger != nil {
		router.Use(middleware.RequestLogger(cfg.Logger))
	}
	if cfg.CORS != nil {
		router.Use(middleware.CORS(*cfg.CORS))
	}
	router.Use(middleware.SecurityHeaders(cfg.Security))
	if cfg.MaxBodySize > 0 {
		router.Use(middleware.LimitRequestBody(cfg.MaxBodySize))
	}
}

// StripTrailingSlash removes a trailing slash before the router matches the
// path, so /health/ and /health reach the same handler without a redirect.
func StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path := r.URL.Path; path != "/" && strings.HasSuffix(path, "/") {
			r.URL.Path = strings.TrimRight(path, "/")
			if r.URL.Path == "" {
				r.URL.Path = "/"
			}
			if r.URL.RawPath != "" {
				r.URL.RawPath = strings.TrimRight(r.URL.RawPath, "/")
			}
		}
		next.ServeHTTP(w, r)
	})
}
