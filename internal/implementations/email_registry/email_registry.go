package emailregistry

import (
	"context"
	"signup/internal/core/domain/account"
	c "signup/internal/core/domain/common"
	"time"

	"github.com/patrickmn/go-cache"
)

// InMemory forgets an email once ttl has passed so the development endpoint
// can be reused without a restart.
type InMemory struct {
	cache *cache.Cache
}

func NewInMemory(ttl time.Duration) *InMemory {
	cleanupInterval := ttl
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	return &InMemory{cache: cache.New(ttl, cleanupInterval)}
}

func (r *InMemory) Register(ctx context.Context, email c.Email) error {
	if err := r.cache.Add(string(email), struct{}{}, cache.DefaultExpiration); err != nil {
		return account.ErrEmailAlreadyExists
	}
	return nil
}

func (r *InMemory) Count() int {
	return r.cache.ItemCount()
}
