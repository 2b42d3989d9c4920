package utils

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/logging"
)

// ErrContextValueMissing is reported when a middleware did not store the value a handler expects
var ErrContextValueMissing = errors.New("expected value missing from request context")

// LogError logs an error with a message using the global logger
func LogError(err error, message string) {
	logging.GetGlobalLogger().Error("%s: %v", message, err)
}

// HandleAPIError is a utility function for consistent error handling across the API.
// Error details are only exposed for client errors outside release mode; 5xx
// responses never carry them.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logging.GetGlobalLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		status,
		message,
		err,
	)

	var details interface{}
	if err != nil && status < 500 && gin.Mode() != gin.ReleaseMode {
		details = err.Error()
	}

	c.AbortWithStatusJSON(status, common.NewErrorResponse(code, message, details))
}
