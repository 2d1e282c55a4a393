// Package middleware holds route-level middleware for the HTTP API.
package middleware

import (
	"github.com/labstack/echo/v4"

	"backend/cipherhacks-mailer/app/internal/runtime"
	"backend/cipherhacks-mailer/app/pkg/redis"
)

type Middleware struct {
	RateLimit RateLimit
}

func NewMiddleware(res runtime.Resource) *Middleware {
	var limiter redis.RateLimiter
	if res.Config.RateLimitConfig.Enabled && res.Redis != nil {
		limiter = redis.NewRedisRateLimiter(res.Redis)
	}
	return NewMiddlewareWithLimiter(res, limiter)
}

// NewMiddlewareWithLimiter lets callers supply their own limiter. A nil limiter disables rate limiting.
func NewMiddlewareWithLimiter(res runtime.Resource, limiter redis.RateLimiter) *Middleware {
	return &Middleware{
		RateLimit: NewRateLimit(res, limiter),
	}
}

func (m *Middleware) RequireRateLimit(scope string) echo.MiddlewareFunc {
	return m.RateLimit.Require(scope)
}
