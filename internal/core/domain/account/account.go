package account

import (
	"context"
	"errors"
	"fmt"
	"signup/internal/core/domain/registration"
)

var ErrRemoteFailure = errors.New("remote account creation failed")

// Creator asks the remote endpoint to create an account. Any non-nil error
// means the account was not created.
type Creator interface {
	CreateAccount(ctx context.Context, input registration.Input) error
}

// RemoteFailure describes a failed creation request. StatusCode is 0 when no
// response was received.
type RemoteFailure struct {
	StatusCode int
	Message    string
	Cause      error
}

func (f *RemoteFailure) Error() string {
	switch {
	case f.Cause != nil:
		return fmt.Sprintf("%s: %v", ErrRemoteFailure, f.Cause)
	case f.Message != "":
		return fmt.Sprintf("%s: status %d: %s", ErrRemoteFailure, f.StatusCode, f.Message)
	}
	return fmt.Sprintf("%s: status %d", ErrRemoteFailure, f.StatusCode)
}

func (f *RemoteFailure) Is(target error) bool {
	return target == ErrRemoteFailure
}

func (f *RemoteFailure) Unwrap() error {
	return f.Cause
}
