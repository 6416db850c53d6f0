package main

import (
	"fmt"
	"signup/internal/app/deps"
	"signup/internal/config"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	apiURL  string
	logFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "signup",
		Short:         "Create an account",
		Long:          `Collects a name, an email and a password, validates them and creates the account on the remote API.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "base URL of the account API (overrides SIGNUP_API_URL)")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "log output path (overrides SIGNUP_LOG_FILE)")

	root.AddCommand(newFormCmd(opts), newSubmitCmd(opts), newDevServerCmd(opts))
	return root
}

func (opts *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.apiURL != "" {
		if err := cfg.SetAPIURL(opts.apiURL); err != nil {
			return nil, err
		}
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	return cfg, nil
}

// initClientDeps loads the configuration of a command that calls the API.
func (opts *rootOptions) initClientDeps(adjust func(*config.Config)) (*deps.Deps, func(), error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.RequireAPIURL(); err != nil {
		return nil, nil, err
	}
	if adjust != nil {
		adjust(cfg)
	}
	d, shutdown, err := deps.InitDeps(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("could not init dependencies: %w", err)
	}
	return d, shutdown, nil
}
