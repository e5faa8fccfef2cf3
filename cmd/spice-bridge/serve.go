package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/spice-bridge/internal/config"
	"github.com/Veraticus/spice-bridge/internal/plaid"
	"github.com/Veraticus/spice-bridge/internal/server"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the bridge HTTP server",
		Long: `Run the bridge HTTP server.

Requires Plaid credentials in the config file or via the PLAID_CLIENT_ID
and PLAID_SECRET environment variables. The process exits immediately if
they are missing.`,
		RunE: runServe,
	}

	cmd.Flags().String("listen", "", "listen address (overrides config)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if flagAddr, _ := cmd.Flags().GetString("listen"); flagAddr != "" {
		cfg.ListenAddr = flagAddr
	}

	gateway, err := plaid.NewClient(cfg.Plaid)
	if err != nil {
		return fmt.Errorf("failed to create Plaid client: %w", err)
	}

	srv := server.New(cfg.ListenAddr, gateway, cfg.WindowDays)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server",
			"addr", cfg.ListenAddr,
			"environment", cfg.Plaid.Environment,
			"window_days", cfg.WindowDays)
		if serveErr := srv.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}
