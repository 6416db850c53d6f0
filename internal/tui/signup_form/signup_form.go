// Package signupform provides the interactive registration screen.
package signupform

import (
	"context"
	"errors"
	"signup/internal/core/domain/feedback"
	"signup/internal/core/domain/registration"
	"signup/internal/core/services"
	signup "signup/internal/core/services/sign_up"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DefaultNotificationTTL = 5 * time.Second

type screen int

const (
	screenForm screen = iota
	screenEntry
)

var labels = map[registration.Field]string{
	registration.FieldName:     "Name",
	registration.FieldEmail:    "E-mail",
	registration.FieldPassword: "Password",
}

// Options configures the model.
type Options struct {
	// EntryRoute is the route that shows the log in screen.
	EntryRoute string
	// NotificationTTL is how long a notification stays visible.
	NotificationTTL time.Duration
	// Context is passed to every attempt. Defaults to context.Background.
	Context context.Context
}

// attemptDoneMsg is returned by the command running an attempt.
type attemptDoneMsg struct {
	result signup.Result
	err    error
}

// dismissMsg hides the notification identified by seq.
type dismissMsg struct {
	seq int
}

// Model holds the registration screen state.
type Model struct {
	service     services.Service[signup.Input, signup.Result]
	opts        Options
	inputs      []textinput.Model
	focus       int
	fieldErrors registration.FieldErrors
	toast       *feedback.Notification
	toastSeq    int
	pending     bool
	lastState   registration.AttemptState
	screen      screen
	route       string
	width       int
	height      int
}

// New creates the registration screen with the name field focused.
func New(service services.Service[signup.Input, signup.Result], opts Options) Model {
	if opts.NotificationTTL <= 0 {
		opts.NotificationTTL = DefaultNotificationTTL
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	m := Model{
		service:     service,
		opts:        opts,
		inputs:      newInputs(),
		fieldErrors: registration.FieldErrors{},
		screen:      screenForm,
	}
	m.inputs[0].Focus()
	return m
}

func newInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(registration.Fields))
	for i, field := range registration.Fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = labels[field]
		ti.CharLimit = 256
		ti.Width = 40
		if field == registration.FieldPassword {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		inputs[i] = ti
	}
	return inputs
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FieldErrorsMsg:
		m.fieldErrors = msg.Errors
		return m, nil

	case NotificationMsg:
		n := msg.Notification
		m.toast = &n
		m.toastSeq++
		seq := m.toastSeq
		return m, tea.Tick(m.opts.NotificationTTL, func(time.Time) tea.Msg {
			return dismissMsg{seq: seq}
		})

	case dismissMsg:
		// A newer notification keeps its own timer.
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case NavigateMsg:
		m.route = msg.Route
		if msg.Route == m.opts.EntryRoute {
			m = m.showEntry()
		}
		return m, nil

	case attemptDoneMsg:
		m.pending = false
		if !errors.Is(msg.err, signup.ErrSubmissionInProgress) {
			m.lastState = msg.result.State
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == screenEntry {
			return m.updateEntry(msg)
		}
		return m.updateForm(msg)
	}

	return m.forwardToInput(msg)
}

func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r":
		return m.showForm(), nil
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.showEntry(), nil
	case "tab", "down":
		return m.cycleFocus(false), nil
	case "shift+tab", "up":
		return m.cycleFocus(true), nil
	case "ctrl+s":
		return m.submit()
	case "enter":
		if m.focus < len(m.inputs)-1 {
			return m.cycleFocus(false), nil
		}
		return m.submit()
	}
	return m.forwardToInput(msg)
}

func (m Model) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.screen != screenForm {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit captures the current values and runs one attempt in a command.
// It does nothing while a previous attempt is pending.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}
	m.pending = true
	input := m.Input()
	service, ctx := m.service, m.opts.Context
	return m, func() tea.Msg {
		result, err := service.Run(ctx, input)
		return attemptDoneMsg{result: result, err: err}
	}
}

func (m Model) cycleFocus(reverse bool) Model {
	m.inputs[m.focus].Blur()
	if reverse {
		m.focus--
		if m.focus < 0 {
			m.focus = len(m.inputs) - 1
		}
	} else {
		m.focus = (m.focus + 1) % len(m.inputs)
	}
	m.inputs[m.focus].Focus()
	return m
}

// showEntry discards the form content and switches to the log in screen.
func (m Model) showEntry() Model {
	m.screen = screenEntry
	m.inputs = newInputs()
	m.focus = 0
	m.fieldErrors = registration.FieldErrors{}
	return m
}

func (m Model) showForm() Model {
	m.screen = screenForm
	m.inputs[m.focus].Focus()
	return m
}

// Input returns the registration input currently typed in the form.
func (m Model) Input() registration.Input {
	return registration.Input{
		Name:     m.valueOf(registration.FieldName),
		Email:    m.valueOf(registration.FieldEmail),
		Password: registration.RawPassword(m.valueOf(registration.FieldPassword)),
	}
}

func (m Model) valueOf(field registration.Field) string {
	for i, f := range registration.Fields {
		if f == field {
			return m.inputs[i].Value()
		}
	}
	return ""
}

// Pending reports whether an attempt is in flight.
func (m Model) Pending() bool {
	return m.pending
}

// OnEntryScreen reports whether the log in screen is visible.
func (m Model) OnEntryScreen() bool {
	return m.screen == screenEntry
}

// FieldErrors returns the errors currently shown next to the fields.
func (m Model) FieldErrors() registration.FieldErrors {
	return m.fieldErrors
}

// Notification returns the visible notification, if any.
func (m Model) Notification() (feedback.Notification, bool) {
	if m.toast == nil {
		return feedback.Notification{}, false
	}
	return *m.toast, true
}

// LastState returns the terminal state of the last finished attempt.
func (m Model) LastState() registration.AttemptState {
	return m.lastState
}

// View renders the visible screen.
func (m Model) View() string {
	var b strings.Builder
	if m.screen == screenEntry {
		b.WriteString(titleStyle.Render("Log in"))
		b.WriteString("\n")
		b.WriteString("Use your e-mail and password to access the application.")
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("r: create an account • q: quit"))
	} else {
		b.WriteString(m.formView())
	}

	if toast := m.toastView(); toast != "" {
		b.WriteString("\n")
		b.WriteString(toast)
	}
	return b.String()
}

func (m Model) formView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create your account"))
	b.WriteString("\n")

	for i, field := range registration.Fields {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(labels[field]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := m.fieldErrors[field]; ok {
			b.WriteString(fieldErrorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	if m.pending {
		b.WriteString(pendingButtonStyle.Render("Signing up..."))
	} else {
		b.WriteString(buttonStyle.Render("Sign up"))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next field • enter/ctrl+s: sign up • esc: back to log in • ctrl+c: quit"))
	return b.String()
}

func (m Model) toastView() string {
	if m.toast == nil {
		return ""
	}
	style := toastStyle.BorderForeground(toastSuccessColor)
	if m.toast.Kind == feedback.KindError {
		style = toastStyle.BorderForeground(toastErrorColor)
	}
	return style.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		labelStyle.Render(m.toast.Title),
		m.toast.Description,
	))
}
