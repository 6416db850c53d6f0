package registeraccount

import (
	"context"
	"errors"
	"signup/internal/core/domain/account"
	c "signup/internal/core/domain/common"
	e "signup/internal/core/domain/errors"
	"signup/internal/core/domain/logging"
	"signup/internal/core/services"
)

// Input is what the development endpoint keeps from a registration;
// the password is checked by the handler and then dropped.
type Input struct {
	Name     string
	Email    c.Email
	ClientIP string
}

func (i Input) GetRateLimitKey() string {
	return "register_account::" + i.ClientIP
}

type Result struct{}

type service struct {
	log      logging.Logger
	registry account.EmailRegistry
}

func New(log logging.Logger, registry account.EmailRegistry) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if registry == nil {
		panic(e.NewNilArgumentError("registry"))
	}
	return &service{log: log, registry: registry}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.registry.Register(ctx, input.Email)
	if errors.Is(err, account.ErrEmailAlreadyExists) {
		s.log.Info(ctx, "Account with the email already exists.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not register email.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Account has been registered.",
		logging.Entry("name", input.Name),
		logging.Entry("email", input.Email),
	)
	return result, nil
}
