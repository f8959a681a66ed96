package lex

import (
	"context"
	"math"

	"golang.org/x/time/rate"
)

// RateLimiter proactively throttles calls to the model building service,
// whose read APIs have low per-account request quotas.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a limiter allowing requestsPerSecond calls per
// second with a burst of one second's worth of calls. Zero or a negative
// rate disables throttling.
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	if requestsPerSecond <= 0 {
		return &RateLimiter{bucket: rate.NewLimiter(rate.Inf, 0)}
	}

	burst := int(math.Ceil(requestsPerSecond))
	return &RateLimiter{bucket: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Wait blocks until a request may be sent or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// Limit returns the configured rate; rate.Inf when throttling is disabled.
func (r *RateLimiter) Limit() rate.Limit {
	return r.bucket.Limit()
}
