package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osa911/portfolio/internal/api/constants"
	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/api/dto/v1/contact"
	"github.com/osa911/portfolio/internal/api/validation"
	"github.com/osa911/portfolio/internal/logging"
)

// ValidationMiddleware binds and validates request payloads before they reach handlers
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	validation.Setup()
	return &ValidationMiddleware{}
}

// ValidateContactRequest validates a contact form submission and stores it
// on the context under constants.ContextKeyContact
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			if isBodyTooLarge(err) {
				abortBodyTooLarge(c)
				return
			}

			details := validation.FormatValidationError(err)
			logging.GetGlobalLogger().Debug("Contact request rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, common.NewErrorResponse(
				common.ErrCodeValidation,
				"Invalid contact request",
				details,
			))
			return
		}

		c.Set(constants.ContextKeyContact, req)
		c.Next()
	}
}
