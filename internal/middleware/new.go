package middleware

import (
	"nb-query/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. rateLimitPerMin <= 0 disables rate limiting.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	var limiter *rateLimiter
	if rateLimitPerMin > 0 {
		limiter = newRateLimiter(rateLimitPerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
