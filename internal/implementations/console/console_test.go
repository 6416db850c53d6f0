package console

import (
	"bytes"
	"signup/internal/core/domain/feedback"
	"signup/internal/core/domain/registration"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldErrorsArePrintedInFormOrder(t *testing.T) {
	assert := require.New(t)
	var out bytes.Buffer
	console := New(&out)

	console.SetFieldErrors(registration.FieldErrors{
		registration.FieldPassword: "bad password",
		registration.FieldName:     "bad name",
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(lines, 2)
	assert.Contains(lines[0], "name:")
	assert.Contains(lines[0], "bad name")
	assert.Contains(lines[1], "password:")
	assert.Contains(lines[1], "bad password")
	assert.Len(console.FieldErrors(), 2)
}

func TestClearingErrorsPrintsNothing(t *testing.T) {
	assert := require.New(t)
	var out bytes.Buffer
	console := New(&out)

	console.SetFieldErrors(registration.FieldErrors{})

	assert.Empty(out.String())
	assert.Empty(console.FieldErrors())
}

func TestNotificationAndNavigation(t *testing.T) {
	assert := require.New(t)
	var out bytes.Buffer
	console := New(&out)

	console.GoTo("/")
	console.Push(feedback.Notification{Kind: feedback.KindSuccess, Title: "Done", Description: "Log in."})

	assert.Equal("/", console.Route())
	assert.Contains(out.String(), "-> /")
	assert.Contains(out.String(), "Done")
	assert.Contains(out.String(), "Log in.")
}
