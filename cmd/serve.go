package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tb3/internal/api"
	"tb3/internal/api/handler/v1handler"
	"tb3/internal/audit"
	"tb3/internal/config"
	"tb3/internal/demo"
	"tb3/internal/ledger"
	"tb3/internal/worker"
	"tb3/pkg/domain"
	"tb3/pkg/logger"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the ledger API server and the demo seed worker",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			actors := demo.NewActors(cfg)
			chain := ledger.New(ledger.Options{ChainID: cfg.Chain.ChainID, Admin: actors.Admin})
			tracker := demo.NewTracker()
			seeder := demo.NewSeeder(chain, strg, actors, tracker, nil)
			demoSvc := demo.New(strg, chain, tracker, demo.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, cfg.Demo.Workers, seeder)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			if cfg.Demo.SeedOnStart {
				res, err := demoSvc.Enqueue(ctx, domain.DefaultDemoSeedRequest())
				if err != nil {
					logger.Error(ctx, "could not enqueue startup seed run", zap.Error(err))
				} else {
					logger.Info(ctx, "startup seed run requested", zap.Bool("queued", res.Queued))
				}
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Ledger:   chain,
				Auditor:  audit.New(chain, strg),
				Demo:     demoSvc,
				Accounts: actors.Accounts(),
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
