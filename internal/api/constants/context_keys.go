package constants

// Context keys for values stored on the gin context
const (
	// Validated request payloads
	ContextKeyContact = "contact"

	// Request metadata
	ContextKeyRequestID = "RequestID"
)

// Header names shared by middleware and handlers
const (
	HeaderRequestID          = "X-Request-ID"
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRetryAfter         = "Retry-After"
)
