package account

import (
	"context"
	"errors"
	c "signup/internal/core/domain/common"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

// EmailRegistry remembers which emails already have an account on the
// development endpoint.
type EmailRegistry interface {
	Register(ctx context.Context, email c.Email) error
}
