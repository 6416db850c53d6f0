package main

import (
	"fmt"
	"os"
	"path/filepath"
	"signup/internal/app/services"
	"signup/internal/config"
	signupform "signup/internal/tui/signup_form"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func init() {
	// Query the terminal background before the program owns stdin, otherwise
	// the OSC 11 reply can land in an input field.
	_ = lipgloss.HasDarkBackground()
}

func newFormCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Fill the registration form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, shutdown, err := opts.initClientDeps(func(cfg *config.Config) {
				// Logs on the terminal would draw over the form.
				if cfg.LogFile == "stderr" || cfg.LogFile == "stdout" {
					cfg.LogFile = filepath.Join(os.TempDir(), "signup.log")
				}
			})
			if err != nil {
				return err
			}
			defer shutdown()

			bridge := signupform.NewBridge()
			model := signupform.New(
				services.InitSignUp(d, bridge, bridge, bridge),
				signupform.Options{
					EntryRoute:      d.Config.EntryRoute,
					NotificationTTL: d.Config.NotificationTTL,
					Context:         cmd.Context(),
				},
			)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			bridge.Attach(p)

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running form: %w", err)
			}
			return nil
		},
	}
}
