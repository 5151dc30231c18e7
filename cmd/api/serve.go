package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"applause-ledger/internal/adapters/notify/webhook"
	"applause-ledger/internal/adapters/storage/kvrepo"
	"applause-ledger/internal/domain/people"
	"applause-ledger/internal/platform/metrics"
	"applause-ledger/internal/ports/notify"
	"applause-ledger/internal/router"
	"applause-ledger/internal/seed"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, err := openStore(ctx, cfg.Storage, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					log.Error("closing store", map[string]any{"err": err})
				}
			}()

			if cfg.SeedOnStart {
				svc := people.NewService(kvrepo.NewPeopleRepo(store))
				if _, err := seed.EnsureSampleData(ctx, svc, log, time.Now()); err != nil {
					return err
				}
			}

			reg := metrics.NewRegistry()

			var sink notify.Sink = notify.Nop{}
			var dispatcher *webhook.Dispatcher
			wcfg := webhook.Config{
				URL:       cfg.Notify.WebhookURL,
				Timeout:   cfg.Notify.Timeout,
				QueueSize: cfg.Notify.QueueSize,
				Workers:   cfg.Notify.Workers,
			}
			if wcfg.IsConfigured() {
				dispatcher, err = webhook.New(wcfg, log, reg)
				if err != nil {
					return err
				}
				sink = dispatcher
			} else {
				log.Info("webhook url not configured, notifications disabled", nil)
			}

			srv := &http.Server{
				Addr: cfg.ListenAddress,
				Handler: router.NewRouter(router.Options{
					Store:        store,
					Logger:       log,
					Registry:     reg,
					Sink:         sink,
					StoreTimeout: cfg.Storage.Timeout,
					HistoryLimit: cfg.HistoryLimit,
				}),
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				log.Info("starting server", map[string]any{
					"addr":    cfg.ListenAddress,
					"storage": string(cfg.Storage.Backend),
				})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				log.Info("shutting down", nil)

				sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				err := srv.Shutdown(sctx)
				// el dispatcher va después del server: no entran más eventos
				if dispatcher != nil {
					if derr := dispatcher.Close(sctx); derr != nil {
						log.Warn("webhook dispatcher did not drain", map[string]any{"err": derr})
					}
				}
				return err
			})

			return g.Wait()
		},
	}
}
