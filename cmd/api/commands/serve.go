package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"activation-engine/internal/api"
)

const shutdownTimeout = 10 * time.Second

// newServeCmd creates the `activation serve` command.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API with POST /get-tags, /rank-tasks and /prompt-category.

Examples:
  activation serve
  activation serve --addr 127.0.0.1:9090 --weights ./weights.yaml`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default $ACTIVATION_ADDR or :8080)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	rt := loadApp(cmd)
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		rt.cfg.Addr = addr
	}

	handler := api.NewRouter(rt.engine, api.Options{
		Logger:      rt.logger,
		JWTSecret:   rt.cfg.JWTSecret,
		CORSOrigins: rt.cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              rt.cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	rt.logger.Info("API server is running", "addr", rt.cfg.Addr, "auth", rt.cfg.AuthEnabled())

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", rt.cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	rt.logger.Info("API server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
