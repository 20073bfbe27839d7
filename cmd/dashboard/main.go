// Command dashboard serves the store seasonality dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "github.com/couchcryptid/store-seasonality-dashboard/internal/adapter/http"
	"github.com/couchcryptid/store-seasonality-dashboard/internal/config"
	"github.com/couchcryptid/store-seasonality-dashboard/internal/observability"
	"github.com/couchcryptid/store-seasonality-dashboard/internal/query"
	"github.com/couchcryptid/store-seasonality-dashboard/internal/referencedata"
	"github.com/couchcryptid/store-seasonality-dashboard/internal/render"
	"github.com/couchcryptid/store-seasonality-dashboard/internal/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port  int
		debug bool
	)

	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Serve the Time Series Visualizer dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load config", "error", err)
				return err
			}
			if cmd.Flags().Changed("port") {
				if err := cfg.SetPort(port); err != nil {
					slog.Error("invalid --port", "error", err)
					return err
				}
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			}
			return run(cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8005, "listen port (overrides PORT)")
	cmd.Flags().BoolVar(&debug, "debug", false, "debug logging, request logging and detailed render errors (overrides DEBUG)")
	return cmd
}

func run(cfg *config.Config) error {
	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	tables, err := referencedata.Load(cfg.LocationsPath, logger)
	if err != nil {
		logger.Error("failed to load reference data", "error", err)
		return fmt.Errorf("startup: %w", err)
	}
	st := tables.Stats()
	metrics.ReferenceRows.WithLabelValues("seasonality").Set(float64(st.SeasonalityRows))
	metrics.ReferenceRows.WithLabelValues("locations").Set(float64(st.LocationRows))

	renderer := render.NewRenderer(query.NewResolver(tables), logger)
	sessions := session.NewStore(cfg.SessionCacheSize, cfg.SessionTTL, nil)

	srv := httpadapter.NewServer(httpadapter.Config{
		Addr:     cfg.HTTPAddr(),
		Debug:    cfg.Debug,
		Renderer: renderer,
		Sessions: sessions,
		Ready:    tables,
		Metrics:  metrics,
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Error("http server error", "error", err)
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
