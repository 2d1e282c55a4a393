package redis

import (
	"context"
	"time"

	"github.com/spartan-truongvi/redis_rate/v10"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
	Peek(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
	Reset(ctx context.Context, key string) error
}

func NewRedisRateLimiter(rds Redis) RateLimiter {
	return redis_rate.NewLimiter(rds.GetUniversalClient())
}

// PerMinute builds a GCRA limit allowing rate requests per minute with the given burst.
// A non-positive burst falls back to rate.
func PerMinute(rate, burst int) redis_rate.Limit {
	if burst <= 0 {
		burst = rate
	}
	return redis_rate.Limit{
		Rate:   rate,
		Burst:  burst,
		Period: time.Minute,
	}
}
