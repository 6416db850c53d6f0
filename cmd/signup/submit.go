package main

import (
	"errors"
	"signup/internal/app/services"
	"signup/internal/core/domain/registration"
	"signup/internal/implementations/console"

	"github.com/spf13/cobra"
)

var (
	errInputRejected  = errors.New("registration input is invalid")
	errAccountNotMade = errors.New("account was not created")
)

type submitOptions struct {
	name     string
	email    string
	password string
}

func newSubmitCmd(opts *rootOptions) *cobra.Command {
	input := &submitOptions{}
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit one registration without the interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, shutdown, err := opts.initClientDeps(nil)
			if err != nil {
				return err
			}
			defer shutdown()

			out := console.New(cmd.OutOrStdout())
			result, err := services.InitSignUp(d, out, out, out).Run(
				cmd.Context(),
				registration.Input{
					Name:     input.name,
					Email:    input.email,
					Password: registration.RawPassword(input.password),
				},
			)
			if err != nil {
				return err
			}

			switch result.State {
			case registration.Navigated:
				return nil
			case registration.Rejected:
				return errInputRejected
			default:
				return errAccountNotMade
			}
		},
	}
	cmd.Flags().StringVar(&input.name, "name", "", "full name")
	cmd.Flags().StringVar(&input.email, "email", "", "email address")
	cmd.Flags().StringVar(&input.password, "password", "", "password")
	return cmd
}
