package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"signup/internal/core/domain/registration"
	signup "signup/internal/core/services/sign_up"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func runSignup(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SIGNUP_API_URL", "")
	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "signup.log")))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func newAPI(t *testing.T, status int) (*httptest.Server, *atomic.Int32) {
	calls := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		rw.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server, calls
}

func TestSubmitCreatesAccount(t *testing.T) {
	api, calls := newAPI(t, http.StatusCreated)

	out, err := runSignup(t, "submit", "--api-url", api.URL,
		"--name", "Ana", "--email", "ana@example.com", "--password", "Abcdef1!")

	require.Nil(t, err)
	require.Equal(t, int32(1), calls.Load())
	require.Contains(t, out, signup.SuccessTitle)
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	api, calls := newAPI(t, http.StatusCreated)

	out, err := runSignup(t, "submit", "--api-url", api.URL,
		"--name", "Ana", "--email", "ana", "--password", "Abcdef1!")

	require.ErrorIs(t, err, errInputRejected)
	require.Equal(t, int32(0), calls.Load())
	require.Contains(t, out, registration.MsgEmailInvalid)
}

func TestSubmitReportsRemoteFailure(t *testing.T) {
	api, _ := newAPI(t, http.StatusInternalServerError)

	out, err := runSignup(t, "submit", "--api-url", api.URL,
		"--name", "Ana", "--email", "ana@example.com", "--password", "Abcdef1!")

	require.ErrorIs(t, err, errAccountNotMade)
	require.Contains(t, out, signup.FailureTitle)
}

func TestSubmitRequiresAPIURL(t *testing.T) {
	_, err := runSignup(t, "submit", "--name", "Ana", "--email", "ana@example.com", "--password", "Abcdef1!")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "SIGNUP_API_URL")
}

func TestDevServerRejectsBadPort(t *testing.T) {
	t.Setenv("SIGNUP_DEV_PORT", "0")
	_, err := runSignup(t, "devserver")
	require.NotNil(t, err)
}
