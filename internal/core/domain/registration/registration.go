package registration

import (
	"fmt"
	"sort"
	"strings"
)

// Field is the name of a registration form field as it is sent over the wire.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Fields lists every field in form order.
var Fields = []Field{FieldName, FieldEmail, FieldPassword}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type Input struct {
	Name     string
	Email    string
	Password RawPassword
}

func (i Input) Validate() error {
	return Validate(i).Err()
}

// FieldErrors maps a field to the message shown next to it.
type FieldErrors map[Field]string

func (e FieldErrors) Fields() []Field {
	fields := make([]Field, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

type ValidationError struct {
	Errors FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Errors[f]))
	}
	return strings.Join(parts, "; ")
}

type AttemptState int

const (
	Untouched AttemptState = iota
	Validating
	Rejected
	Calling
	Navigated
	NotifiedError
)

func (s AttemptState) String() string {
	switch s {
	case Untouched:
		return "untouched"
	case Validating:
		return "validating"
	case Rejected:
		return "rejected"
	case Calling:
		return "calling"
	case Navigated:
		return "navigated"
	case NotifiedError:
		return "notified_error"
	}
	return fmt.Sprintf("AttemptState(%d)", int(s))
}

// IsTerminal reports whether an attempt in this state is over.
func (s AttemptState) IsTerminal() bool {
	return s == Rejected || s == Navigated || s == NotifiedError
}
