package ratelimiter

import (
	"context"
	"sync"
)

type FakeRateLimiter struct {
	IsAllowed bool
	lock      sync.Mutex
	keys      []string
}

func NewFakeRateLimiter(isAllowed bool) *FakeRateLimiter {
	return &FakeRateLimiter{IsAllowed: isAllowed}
}

func (rl *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	rl.lock.Lock()
	defer rl.lock.Unlock()
	rl.keys = append(rl.keys, key)
	if rl.IsAllowed {
		return Allowed()
	}
	return NotAllowed()
}

func (rl *FakeRateLimiter) Keys() []string {
	rl.lock.Lock()
	defer rl.lock.Unlock()
	return append([]string(nil), rl.keys...)
}
