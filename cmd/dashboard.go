package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tb3/internal/config"
	"tb3/internal/dashboard"
	"tb3/pkg/controller"
	"tb3/pkg/logger"
	"tb3/pkg/tb3/tb3http"
)

func dashboardCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Serves the dashboard against a running backend",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client, err := tb3http.New(&http.Client{Timeout: cfg.Dashboard.RequestTimeout},
				cfg.Dashboard.BackendURL, cfg.Dashboard.Token)
			if err != nil {
				logger.Fatal(ctx, "could not create backend client", zap.Error(err))
			}

			srv, err := dashboard.New(client, dashboard.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create dashboard", zap.Error(err))
			}

			server := &http.Server{
				Addr:              cfg.Dashboard.Addr,
				Handler:           controller.WithLogger(srv),
				ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
				ReadTimeout:       cfg.HTTP.ReadTimeout,
				WriteTimeout:      cfg.HTTP.WriteTimeout,
				IdleTimeout:       cfg.HTTP.IdleTimeout,
			}

			go func() {
				logger.Info(ctx, "starting dashboard...",
					zap.String("addr", cfg.Dashboard.Addr), zap.String("backend", cfg.Dashboard.BackendURL))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error(ctx, "could not start dashboard", zap.Error(err))
				}
			}()

			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(shutdownCtx, "stopping dashboard...")
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop dashboard", zap.Error(err))
			}
		},
	}

	return cmd
}
