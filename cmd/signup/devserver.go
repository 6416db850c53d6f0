package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"signup/internal/app"
	"signup/internal/app/deps"
	"signup/internal/app/services"
	"time"

	dl "signup/internal/core/domain/logging"

	"github.com/spf13/cobra"
)

const serverShutdownTimeout = 20 * time.Second

func newDevServerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "devserver",
		Short: "Serve a local account endpoint for development",
		Long:  `Serves POST /users. Emails are remembered in memory for SIGNUP_DEV_EMAIL_TTL, passwords are never stored.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			d, shutdownDeps, err := deps.InitDeps(cfg)
			if err != nil {
				return fmt.Errorf("could not init dependencies: %w", err)
			}

			httpServer := app.InitHttpServer(d, services.InitServices(d))
			listener, err := net.Listen("tcp", httpServer.Addr)
			if err != nil {
				shutdownDeps()
				return fmt.Errorf("could not listen on %s: %w", httpServer.Addr, err)
			}

			errCh := make(chan error, 1)
			go func() { errCh <- start(cmd.Context(), httpServer, listener, d) }()

			select {
			case err = <-errCh:
			case <-cmd.Context().Done():
				err = shutdown(context.Background(), httpServer, d)
			}
			shutdownDeps()
			return err
		},
	}
}

func start(ctx context.Context, server *http.Server, listener net.Listener, deps *deps.Deps) error {
	deps.Logger.Info(
		ctx,
		"HTTP server has started.",
		dl.Entry("address", listener.Addr().String()),
		dl.Entry("allowedOrigins", deps.Config.DevAllowedOrigins),
	)
	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	deps.Logger.Info(ctx, "HTTP service is stopping gracefully.")
	return nil
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps) error {
	ctx, cancel := context.WithTimeout(ctx, serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
	return nil
}
