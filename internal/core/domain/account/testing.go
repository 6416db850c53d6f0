package account

import (
	"context"
	"fmt"
	c "signup/internal/core/domain/common"
	"signup/internal/core/domain/registration"
	"sync"
)

type FakeCreator struct {
	Calls []registration.Input
	Err   error
	// Block, when set, keeps CreateAccount pending until it is closed.
	Block   chan struct{}
	Started chan struct{}
	lock    sync.Mutex
}

func NewFakeCreator() *FakeCreator {
	return &FakeCreator{}
}

func (c *FakeCreator) CreateAccount(ctx context.Context, input registration.Input) error {
	c.lock.Lock()
	c.Calls = append(c.Calls, input)
	block, started, err := c.Block, c.Started, c.Err
	c.lock.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (c *FakeCreator) CallCount() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.Calls)
}

func (c *FakeCreator) LastCall() registration.Input {
	c.lock.Lock()
	defer c.lock.Unlock()
	l := len(c.Calls)
	if l == 0 {
		panic("Call count is 0.")
	}
	return c.Calls[l-1]
}

type FakeEmailRegistry struct {
	Emails      map[c.Email]struct{}
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeEmailRegistry() *FakeEmailRegistry {
	return &FakeEmailRegistry{Emails: make(map[c.Email]struct{})}
}

func (r *FakeEmailRegistry) Register(ctx context.Context, email c.Email) error {
	if r.ReturnError {
		return fmt.Errorf("could not register email %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.Emails[email]; ok {
		return ErrEmailAlreadyExists
	}
	r.Emails[email] = struct{}{}
	return nil
}
