package routes

import (
	"github.com/osa911/portfolio/internal/api/handlers"
	"github.com/osa911/portfolio/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
}

// Middleware contains the route-scoped middleware
type Middleware struct {
	Validation     *middleware.ValidationMiddleware
	ContactLimiter *middleware.ClientRateLimiter
}
