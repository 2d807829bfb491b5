package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/espalier"
	httpadapter "github.com/aretw0/espalier/pkg/adapters/http"
	"github.com/aretw0/espalier/pkg/observability"
	"github.com/aretw0/espalier/pkg/registry"
	"github.com/aretw0/espalier/pkg/tasks/stones"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver registry over HTTP",
	Long: `Starts an HTTP server exposing the registered solvers (POST /solve/{solver})
along with Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		addr := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

		reg := registry.NewRegistry()
		reg.Register("stones", stones.Solver(
			espalier.WithLogger(logger),
			espalier.WithHooks(metrics.Hooks()),
		))

		server := &http.Server{
			Addr:    addr,
			Handler: httpadapter.NewHandler(reg, logger),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("HTTP server listening", "address", addr, "solvers", reg.Names())
			serverErrors <- server.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			logger.Info("Shutdown signal received, shutting down server...")
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("could not stop server gracefully: %w", err)
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
