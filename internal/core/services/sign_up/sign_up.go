package signup

import (
	"context"
	"errors"
	"signup/internal/core/domain/account"
	e "signup/internal/core/domain/errors"
	"signup/internal/core/domain/feedback"
	"signup/internal/core/domain/logging"
	"signup/internal/core/domain/registration"
	"signup/internal/core/services"

	"github.com/google/uuid"
)

const (
	SuccessTitle       = "Registration complete!"
	SuccessDescription = "Log in to access the application."
	FailureTitle       = "Registration failed"
	FailureDescription = "Something went wrong while creating your account, please try again."
)

type Input = registration.Input

type Result struct {
	State       registration.AttemptState
	FieldErrors registration.FieldErrors
}

type service struct {
	log        logging.Logger
	creator    account.Creator
	feedback   *feedback.Adapter
	navigator  feedback.Navigator
	entryRoute string
}

func New(
	log logging.Logger,
	creator account.Creator,
	adapter *feedback.Adapter,
	navigator feedback.Navigator,
	entryRoute string,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if creator == nil {
		panic(e.NewNilArgumentError("creator"))
	}
	if adapter == nil {
		panic(e.NewNilArgumentError("adapter"))
	}
	if navigator == nil {
		panic(e.NewNilArgumentError("navigator"))
	}
	return &service{
		log:        log,
		creator:    creator,
		feedback:   adapter,
		navigator:  navigator,
		entryRoute: entryRoute,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	attemptID := uuid.NewString()
	s.feedback.ClearFieldErrors()

	report := registration.Validate(input)
	if !report.IsValid() {
		result.State = registration.Rejected
		result.FieldErrors = report.FieldErrors()
		s.feedback.ReportFieldErrors(result.FieldErrors)
		s.log.Info(
			ctx,
			"Registration input rejected.",
			logging.Entry("attemptId", attemptID),
			logging.Entry("fields", result.FieldErrors.Fields()),
		)
		return result, nil
	}

	err = s.creator.CreateAccount(ctx, input)
	if errors.Is(err, context.Canceled) {
		s.log.Info(ctx, "Registration attempt abandoned.", logging.Entry("attemptId", attemptID))
		return Result{State: registration.Calling}, err
	}
	if err != nil {
		s.feedback.Notify(feedback.KindError, FailureTitle, FailureDescription)
		s.log.Info(ctx, "Account has not been created.", logging.Entry("attemptId", attemptID))
		return Result{State: registration.NotifiedError}, nil
	}

	s.navigator.GoTo(s.entryRoute)
	s.feedback.Notify(feedback.KindSuccess, SuccessTitle, SuccessDescription)
	s.log.Info(
		ctx,
		"Account has been created.",
		logging.Entry("attemptId", attemptID),
		logging.Entry("route", s.entryRoute),
	)
	return Result{State: registration.Navigated}, nil
}
