package signupform

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	labelStyle = lipgloss.NewStyle().Bold(true)

	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	fieldErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder())

	pendingButtonStyle = buttonStyle.Faint(true)

	helpStyle = lipgloss.NewStyle().Faint(true).MarginTop(1)

	toastStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginTop(1).
			Border(lipgloss.RoundedBorder())

	toastSuccessColor = lipgloss.Color("10")
	toastErrorColor   = lipgloss.Color("9")
)
