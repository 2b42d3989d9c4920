package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/osa911/portfolio/internal/api/constants"
	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/logging"
)

// RateLimitConfig defines configuration for the per-client rate limiter
type RateLimitConfig struct {
	// Requests allowed per window for a single client
	Requests int
	// Window over which Requests are counted
	Window time.Duration
	// IdleTTL is how long an untouched client entry is kept. Zero means two windows.
	IdleTTL time.Duration
}

type clientWindow struct {
	// hits holds the times of the accepted requests still inside the window, oldest first
	hits     []time.Time
	lastSeen time.Time
}

// ClientRateLimiter keeps a sliding log per client address: a request is
// accepted only while fewer than Requests were accepted during the preceding
// Window, so no Window-long span ever holds more than Requests accepted requests.
type ClientRateLimiter struct {
	config RateLimitConfig

	mu      sync.Mutex
	clients map[string]*clientWindow

	now func() time.Time

	// rejectLog throttles the warning written for rejected requests
	rejectLog *rate.Sometimes
}

// NewClientRateLimiter creates a limiter with the given configuration
func NewClientRateLimiter(config RateLimitConfig) *ClientRateLimiter {
	if config.Requests <= 0 {
		config.Requests = 1
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = 2 * config.Window
	}

	return &ClientRateLimiter{
		config:    config,
		clients:   make(map[string]*clientWindow),
		now:       time.Now,
		rejectLog: &rate.Sometimes{First: 10, Interval: 10 * time.Second},
	}
}

// SetClock replaces the time source; call it before the limiter is shared
func (l *ClientRateLimiter) SetClock(now func() time.Time) {
	l.now = now
}

// Allow records one request for key. A rejected request is not recorded; it
// reports how long until the oldest accepted request leaves the window.
func (l *ClientRateLimiter) Allow(key string) (allowed bool, remaining int, retryAfter time.Duration) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.clients[key]
	if !ok {
		entry = &clientWindow{hits: make([]time.Time, 0, l.config.Requests)}
		l.clients[key] = entry
	}
	entry.lastSeen = now

	expired := 0
	for expired < len(entry.hits) && now.Sub(entry.hits[expired]) >= l.config.Window {
		expired++
	}
	entry.hits = append(entry.hits[:0], entry.hits[expired:]...)

	if len(entry.hits) < l.config.Requests {
		entry.hits = append(entry.hits, now)
		return true, l.config.Requests - len(entry.hits), 0
	}

	return false, 0, entry.hits[0].Add(l.config.Window).Sub(now)
}

// Len returns the number of tracked clients
func (l *ClientRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Sweep drops clients that have not been seen for IdleTTL
func (l *ClientRateLimiter) Sweep() int {
	cutoff := l.now().Add(-l.config.IdleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, entry := range l.clients {
		if entry.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Run sweeps idle clients every IdleTTL until ctx is cancelled
func (l *ClientRateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(l.config.IdleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := l.Sweep(); removed > 0 {
				logging.GetGlobalLogger().Debug("Rate limiter dropped %d idle clients", removed)
			}
		}
	}
}

// Description renders the quota the way it is reported to clients, e.g. "5 per 1 minute"
func (l *ClientRateLimiter) Description() string {
	return fmt.Sprintf("%d per %s", l.config.Requests, describeWindow(l.config.Window))
}

func describeWindow(window time.Duration) string {
	switch {
	case window%time.Hour == 0:
		return pluralize(int(window/time.Hour), "hour")
	case window%time.Minute == 0:
		return pluralize(int(window/time.Minute), "minute")
	case window%time.Second == 0:
		return pluralize(int(window/time.Second), "second")
	default:
		return window.String()
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// RateLimitByClient rejects requests from a client address that exceeded its quota
func RateLimitByClient(limiter *ClientRateLimiter) gin.HandlerFunc {
	limit := strconv.Itoa(limiter.config.Requests)
	message := "Rate limit exceeded: " + limiter.Description()

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		allowed, remaining, retryAfter := limiter.Allow(clientIP)

		c.Header(constants.HeaderRateLimitLimit, limit)
		c.Header(constants.HeaderRateLimitRemaining, strconv.Itoa(remaining))

		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header(constants.HeaderRetryAfter, strconv.Itoa(seconds))

			limiter.rejectLog.Do(func() {
				logging.GetGlobalLogger().Warn("Rate limit exceeded for %s on %s", clientIP, c.Request.URL.Path)
			})
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.NewErrorResponse(common.ErrCodeTooManyRequests, message, nil))
			return
		}

		c.Next()
	}
}
