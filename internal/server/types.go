package server

import (
	"time"

	"github.com/osa911/portfolio/internal/telemetry"
)

// Option customizes a Server
type Option func(*options)

type options struct {
	tracing *telemetry.Tracing
	now     func() time.Time
}

// WithTracing records a span per request through the given tracer provider
func WithTracing(tracing *telemetry.Tracing) Option {
	return func(o *options) {
		if tracing != nil {
			o.tracing = tracing
		}
	}
}

// WithClock replaces the wall clock used by the contact rate limiter
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
