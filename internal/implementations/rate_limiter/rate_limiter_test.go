package ratelimiter

import (
	"context"
	"signup/internal/core/domain/logging"
	ratelimiter "signup/internal/core/domain/rate_limiter"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/stretchr/testify/require"
)

const KEY = "register_account::127.0.0.1"

func TestInMemoryLimitsWithinWindow(t *testing.T) {
	now := time.Date(2026, 10, 14, 13, 42, 5, 0, time.UTC)
	limiter := NewInMemory(func() time.Time { return now })
	limit := ratelimiter.Limit{Value: 2, Interval: ratelimiter.Minute}
	ctx := context.Background()

	require.True(t, limiter.CheckLimit(ctx, KEY, limit).IsAllowed)
	require.True(t, limiter.CheckLimit(ctx, KEY, limit).IsAllowed)
	require.False(t, limiter.CheckLimit(ctx, KEY, limit).IsAllowed)
	require.True(t, limiter.CheckLimit(ctx, "other", limit).IsAllowed)

	now = now.Add(time.Minute)
	require.True(t, limiter.CheckLimit(ctx, KEY, limit).IsAllowed)
}

func TestInMemoryPanicsWithoutClock(t *testing.T) {
	require.Panics(t, func() { NewInMemory(nil) })
}

func TestRedisFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	log := logging.NewFakeLogger()
	limiter := NewRedis(client, log, time.Now)

	result := limiter.CheckLimit(context.Background(), KEY, ratelimiter.Limit{Value: 1, Interval: ratelimiter.Hour})

	require.True(t, result.IsAllowed)
	require.Equal(t, 1, log.CountLevel(logging.ERROR))
}

func TestRedisDeniesCanceledRequests(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()
	limiter := NewRedis(client, logging.NewFakeLogger(), time.Now)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := limiter.CheckLimit(ctx, KEY, ratelimiter.Limit{Value: 1, Interval: ratelimiter.Minute})

	require.False(t, result.IsAllowed)
}

func TestRedisPanicsOnNilArguments(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	require.Panics(t, func() { NewRedis(nil, logging.NewFakeLogger(), time.Now) })
	require.Panics(t, func() { NewRedis(client, nil, time.Now) })
	require.Panics(t, func() { NewRedis(client, logging.NewFakeLogger(), nil) })
}
