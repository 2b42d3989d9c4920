package middleware

import (
	"github.com/gin-gonic/gin"
)

// Content security policies for the two servers
const (
	// APIContentSecurityPolicy forbids everything; the API only serves JSON
	APIContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'"

	// DemosContentSecurityPolicy allows the chart runtime and same-origin chart frames
	DemosContentSecurityPolicy = "default-src 'self'; script-src 'self' 'unsafe-inline' https://go-echarts.github.io; style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-src 'self'; frame-ancestors 'self'"
)

// SecurityOptions selects the framing and content policy for a server
type SecurityOptions struct {
	FrameOptions          string
	ContentSecurityPolicy string
}

// APISecurityOptions is used by the API server
var APISecurityOptions = SecurityOptions{
	FrameOptions:          "DENY",
	ContentSecurityPolicy: APIContentSecurityPolicy,
}

// DemosSecurityOptions is used by the demo gallery, which embeds its own chart pages
var DemosSecurityOptions = SecurityOptions{
	FrameOptions:          "SAMEORIGIN",
	ContentSecurityPolicy: DemosContentSecurityPolicy,
}

// SecurityHeaders middleware adds security headers to every response
func SecurityHeaders(opts SecurityOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", opts.FrameOptions)
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		c.Header("Permissions-Policy", "accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()")
		c.Header("Content-Security-Policy", opts.ContentSecurityPolicy)
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}
