package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/spartan-truongvi/redis_rate/v10"
	"go.uber.org/zap"

	"backend/cipherhacks-mailer/app/api/client/exception"
	"backend/cipherhacks-mailer/app/api/client/response"
	"backend/cipherhacks-mailer/app/internal/runtime"
	"backend/cipherhacks-mailer/app/pkg/redis"
	ctxutil "backend/cipherhacks-mailer/app/pkg/util/context"
)

const rateLimitKeyPrefix = "rate_limit"

type RateLimit struct {
	res     runtime.Resource
	limiter redis.RateLimiter
	limit   redis_rate.Limit
}

func NewRateLimit(res runtime.Resource, limiter redis.RateLimiter) RateLimit {
	cfg := res.Config.RateLimitConfig
	return RateLimit{
		res:     res,
		limiter: limiter,
		limit:   redis.PerMinute(cfg.RequestsPerMinute, cfg.Burst),
	}
}

func (rl RateLimit) Enabled() bool {
	return rl.limiter != nil && rl.limit.Rate > 0
}

// Require limits requests per client address within scope. Limiter failures let the request through.
func (rl RateLimit) Require(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !rl.Enabled() {
			return next
		}
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s:%s", rateLimitKeyPrefix, scope, c.RealIP())

			result, err := rl.limiter.Allow(ctx, key, rl.limit)
			if err != nil {
				rl.res.Logger.Warn("Rate limiter unavailable, letting request through",
					zap.String("request_id", ctxutil.RequestID(ctx)),
					zap.String("scope", scope),
					zap.Error(err),
				)
				return next(c)
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			if result.Allowed > 0 {
				return next(c)
			}

			if result.RetryAfter > 0 {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds()+0.5)))
			}
			rl.res.Logger.Info("Rate limit exceeded",
				zap.String("request_id", ctxutil.RequestID(ctx)),
				zap.String("scope", scope),
				zap.String("remote_ip", c.RealIP()),
			)
			return echo.NewHTTPError(http.StatusTooManyRequests, response.ToErrorResponse(response.ErrMsgTooManyRequests)).
				WithInternal(exception.ErrCodeRateLimitExceeded)
		}
	}
}
