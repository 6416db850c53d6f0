package signupform

import (
	e "signup/internal/core/domain/errors"
	"signup/internal/core/domain/feedback"
	"signup/internal/core/domain/registration"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender delivers a message to a running Bubble Tea program.
// *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// FieldErrorsMsg replaces the errors shown next to the form fields.
type FieldErrorsMsg struct {
	Errors registration.FieldErrors
}

// NotificationMsg shows a transient notification.
type NotificationMsg struct {
	Notification feedback.Notification
}

// NavigateMsg switches the visible screen.
type NavigateMsg struct {
	Route string
}

// Bridge implements the form state holder, the notification sink and the
// navigator by forwarding every write to the program as a message, so the
// model is only ever mutated from the event loop.
type Bridge struct {
	lock   sync.RWMutex
	sender Sender
}

func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach sets the program the bridge forwards to. The program usually
// exists only after the model, hence the late binding.
func (b *Bridge) Attach(sender Sender) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.sender = sender
}

func (b *Bridge) SetFieldErrors(errors registration.FieldErrors) {
	b.send(FieldErrorsMsg{Errors: errors})
}

func (b *Bridge) Push(n feedback.Notification) {
	b.send(NotificationMsg{Notification: n})
}

func (b *Bridge) GoTo(route string) {
	b.send(NavigateMsg{Route: route})
}

func (b *Bridge) send(msg tea.Msg) {
	b.lock.RLock()
	sender := b.sender
	b.lock.RUnlock()
	if sender == nil {
		panic(e.NewInvalidStateError("bridge is not attached to a program"))
	}
	sender.Send(msg)
}
