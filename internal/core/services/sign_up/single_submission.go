package signup

import (
	"context"
	"errors"
	e "signup/internal/core/domain/errors"
	"signup/internal/core/domain/logging"
	"signup/internal/core/services"
	"sync/atomic"
)

var ErrSubmissionInProgress = errors.New("submission in progress")

type serviceWithSingleSubmission struct {
	log      logging.Logger
	inner    services.Service[Input, Result]
	inFlight atomic.Bool
}

// WithSingleSubmission rejects an attempt while a previous one has not
// finished. A rejected attempt touches no collaborator.
func WithSingleSubmission(
	log logging.Logger,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithSingleSubmission{log: log, inner: inner}
}

func (s *serviceWithSingleSubmission) Run(ctx context.Context, input Input) (result Result, err error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.Info(ctx, "Skip submission, previous attempt is still pending.")
		return result, ErrSubmissionInProgress
	}
	defer s.inFlight.Store(false)

	return s.inner.Run(ctx, input)
}
