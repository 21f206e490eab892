package mcp

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig holds rate limiting configuration for the HTTP transport.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
	// RetryAfter is the backoff advertised to rejected clients.
	RetryAfter time.Duration
}

// DefaultRateLimit allows an assistant to issue bursts of tool calls while
// keeping a runaway client from monopolising the map.
var DefaultRateLimit = RateLimitConfig{
	RequestsPerSecond: 20,
	BurstSize:         40,
	RetryAfter:        time.Second,
}

// RateLimiter is a token bucket shared by every HTTP request.
type RateLimiter struct {
	mu         sync.Mutex
	limiter    *rate.Limiter
	retryAfter time.Duration
	rejected   int
}

// NewRateLimiter creates a rate limiter with the given configuration.
// Non-positive values fall back to DefaultRateLimit.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRateLimit.RequestsPerSecond
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = DefaultRateLimit.BurstSize
	}
	if cfg.RetryAfter <= 0 {
		cfg.RetryAfter = DefaultRateLimit.RetryAfter
	}

	return &RateLimiter{
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
		retryAfter: cfg.RetryAfter,
	}
}

// Allow reports whether a request may proceed now.
func (r *RateLimiter) Allow() bool {
	if r.limiter.Allow() {
		return true
	}
	r.mu.Lock()
	r.rejected++
	r.mu.Unlock()
	return false
}

// Rejected returns how many requests have been turned away.
func (r *RateLimiter) Rejected() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rejected
}

// Middleware answers 429 Too Many Requests once the bucket is empty.
func (r *RateLimiter) Middleware(next http.Handler) http.Handler {
	retry := strconv.Itoa(max(int(r.retryAfter/time.Second), 1))
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !r.Allow() {
			w.Header().Set("Retry-After", retry)
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, req)
	})
}
