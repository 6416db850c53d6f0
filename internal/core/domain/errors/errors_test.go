package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNilArgumentError(t *testing.T) {
	err := NewNilArgumentError("log")

	require.Equal(t, "log", err.Argument())
	require.EqualError(t, err, "argument 'log' must not be nil")
}

func TestInvalidStateError(t *testing.T) {
	require.EqualError(t, NewInvalidStateError("not attached"), "not attached")
}
