package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/portfolio/internal/api/handlers"
	"github.com/osa911/portfolio/internal/api/middleware"
)

// ContactPaths are the public paths of the contact endpoint. /api/contact is
// what the homepage calls through its proxy.
var ContactPaths = []string{"/contact", "/api/contact"}

// SetupContactRoutes configures contact form routes. Both paths share one
// limiter, so a client's quota covers them together. Only well-formed
// submissions count towards the quota.
func SetupContactRoutes(router *gin.Engine, contact *handlers.ContactHandler, m *Middleware) {
	for _, path := range ContactPaths {
		router.POST(path,
			m.Validation.ValidateContactRequest(),
			middleware.RateLimitByClient(m.ContactLimiter),
			contact.Submit,
		)
	}
}
