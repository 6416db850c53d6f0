package ratelimiter

import (
	"context"
	"errors"
	e "signup/internal/core/domain/errors"
	"signup/internal/core/domain/logging"
	ratelimiter "signup/internal/core/domain/rate_limiter"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/patrickmn/go-cache"
)

// Redis counts requests in fixed windows shared by every server instance.
// It fails open when Redis is unavailable.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
	now         func() time.Time
}

func NewRedis(redisClient *redis.Client, log logging.Logger, now func() time.Time) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Redis{redisClient: redisClient, log: log, now: now}
}

func (r *Redis) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	k := limit.Interval.WindowKey(key, r.now())

	cmds, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, limit.Interval.Duration())
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return ratelimiter.NotAllowed()
	}
	if err != nil {
		r.log.Error(ctx, "Could not check rate limit due to Redis client error.", logging.Entry("err", err))
		return ratelimiter.Allowed()
	}
	intCmd := cmds[0].(*redis.IntCmd)
	if intCmd.Val() > int64(limit.Value) {
		return ratelimiter.NotAllowed()
	}
	return ratelimiter.Allowed()
}

// InMemory counts requests in fixed windows local to the process.
type InMemory struct {
	cache *cache.Cache
	now   func() time.Time
}

func NewInMemory(now func() time.Time) *InMemory {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &InMemory{cache: cache.New(time.Hour, 10*time.Minute), now: now}
}

func (m *InMemory) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	k := limit.Interval.WindowKey(key, m.now())

	// Add only succeeds for the first request of a window.
	if err := m.cache.Add(k, int64(1), limit.Interval.Duration()); err == nil {
		return allowedIf(1, limit)
	}
	count, err := m.cache.IncrementInt64(k, 1)
	if err != nil {
		// The window expired between Add and IncrementInt64.
		m.cache.Set(k, int64(1), limit.Interval.Duration())
		count = 1
	}
	return allowedIf(count, limit)
}

func allowedIf(count int64, limit ratelimiter.Limit) ratelimiter.Result {
	if count > int64(limit.Value) {
		return ratelimiter.NotAllowed()
	}
	return ratelimiter.Allowed()
}
