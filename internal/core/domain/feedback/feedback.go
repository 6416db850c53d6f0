// Package feedback turns the outcome of a registration attempt into writes on
// the form state holder and the notification sink.
package feedback

import (
	e "signup/internal/core/domain/errors"
	"signup/internal/core/domain/registration"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	Kind        Kind
	Title       string
	Description string
}

// FormState stores the per-field error slots of the form.
// An empty mapping clears every slot.
type FormState interface {
	SetFieldErrors(errors registration.FieldErrors)
}

// NotificationSink displays transient notifications. Push must not block
// until the notification is dismissed.
type NotificationSink interface {
	Push(n Notification)
}

type Navigator interface {
	GoTo(route string)
}

type Adapter struct {
	form FormState
	sink NotificationSink
}

func NewAdapter(form FormState, sink NotificationSink) *Adapter {
	if form == nil {
		panic(e.NewNilArgumentError("form"))
	}
	if sink == nil {
		panic(e.NewNilArgumentError("sink"))
	}
	return &Adapter{form: form, sink: sink}
}

func (a *Adapter) ClearFieldErrors() {
	a.form.SetFieldErrors(registration.FieldErrors{})
}

// ReportFieldErrors replaces the form errors with the given mapping.
func (a *Adapter) ReportFieldErrors(errors registration.FieldErrors) {
	errs := make(registration.FieldErrors, len(errors))
	for field, msg := range errors {
		errs[field] = msg
	}
	a.form.SetFieldErrors(errs)
}

func (a *Adapter) Notify(kind Kind, title string, description string) {
	a.sink.Push(Notification{Kind: kind, Title: title, Description: description})
}
