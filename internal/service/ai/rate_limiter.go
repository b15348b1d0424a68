package ai

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the number of provider calls allowed per minute.
const DefaultRateLimit = 60

// RateLimiter throttles outbound provider calls to protect the API key.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perMinute calls per minute.
// Non-positive values fall back to DefaultRateLimit.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
	}
}

// Wait blocks until a call may proceed or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
