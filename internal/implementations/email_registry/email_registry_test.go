package emailregistry

import (
	"context"
	"errors"
	"signup/internal/core/domain/account"
	c "signup/internal/core/domain/common"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsDuplicates(t *testing.T) {
	assert := require.New(t)
	registry := NewInMemory(time.Hour)
	ctx := context.Background()

	assert.Nil(registry.Register(ctx, c.Email("ana@example.com")))
	assert.Nil(registry.Register(ctx, c.Email("bob@example.com")))
	err := registry.Register(ctx, c.Email("ana@example.com"))

	assert.True(errors.Is(err, account.ErrEmailAlreadyExists))
	assert.Equal(2, registry.Count())
}

func TestRegisteredEmailExpires(t *testing.T) {
	assert := require.New(t)
	registry := NewInMemory(20 * time.Millisecond)
	ctx := context.Background()

	assert.Nil(registry.Register(ctx, c.Email("ana@example.com")))
	time.Sleep(50 * time.Millisecond)
	assert.Nil(registry.Register(ctx, c.Email("ana@example.com")))
}
