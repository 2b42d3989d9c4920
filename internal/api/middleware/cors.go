package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/osa911/portfolio/internal/api/dto/common"
)

// CORSConfig controls which browser origins may call the API
type CORSConfig struct {
	AllowedOrigins []string
	// Development accepts any origin
	Development bool
}

// CORS middleware
func CORS(config CORSConfig) gin.HandlerFunc {
	allowed := lo.FilterMap(config.AllowedOrigins, func(origin string, _ int) (string, bool) {
		origin = strings.TrimSpace(origin)
		return origin, origin != ""
	})
	wildcard := lo.Contains(allowed, "*")

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		header := c.Writer.Header()

		switch {
		case config.Development || len(allowed) == 0:
			if origin != "" {
				header.Set("Access-Control-Allow-Origin", origin)
			} else {
				header.Set("Access-Control-Allow-Origin", "*")
			}
		case origin == "":
			// same-origin or non-browser client
		case wildcard || lo.Contains(allowed, origin):
			header.Set("Access-Control-Allow-Origin", origin)
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse(
				common.ErrCodeForbidden,
				"Origin not allowed",
				nil,
			))
			return
		}

		header.Add("Vary", "Origin")
		header.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Origin, X-Requested-With, X-Request-ID")
		header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		header.Set("Access-Control-Expose-Headers", "Retry-After, X-RateLimit-Limit, X-RateLimit-Remaining, X-Request-ID")
		header.Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
