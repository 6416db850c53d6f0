// Package console prints registration feedback as plain terminal lines.
package console

import (
	"fmt"
	"io"
	"signup/internal/core/domain/feedback"
	"signup/internal/core/domain/registration"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	fieldStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	subtleStyle  = lipgloss.NewStyle().Faint(true)
)

// Feedback implements the form state holder, the notification sink and the
// navigator on top of a single writer.
type Feedback struct {
	out   io.Writer
	lock  sync.Mutex
	route string
	errs  registration.FieldErrors
}

func New(out io.Writer) *Feedback {
	return &Feedback{out: out, errs: registration.FieldErrors{}}
}

func (f *Feedback) SetFieldErrors(errors registration.FieldErrors) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.errs = errors
	for _, field := range registration.Fields {
		if msg, ok := errors[field]; ok {
			fmt.Fprintf(f.out, "%s %s\n", fieldStyle.Render(string(field)+":"), errorStyle.Render(msg))
		}
	}
}

func (f *Feedback) Push(n feedback.Notification) {
	f.lock.Lock()
	defer f.lock.Unlock()
	style := successStyle
	if n.Kind == feedback.KindError {
		style = errorStyle
	}
	fmt.Fprintf(f.out, "%s %s\n", style.Render(n.Title), subtleStyle.Render(n.Description))
}

func (f *Feedback) GoTo(route string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.route = route
	fmt.Fprintf(f.out, "%s\n", subtleStyle.Render("-> "+route))
}

// Route returns the last route navigated to, empty if none.
func (f *Feedback) Route() string {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.route
}

func (f *Feedback) FieldErrors() registration.FieldErrors {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.errs
}
