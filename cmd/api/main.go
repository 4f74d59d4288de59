package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/omar221neva/FinalGp/docs" // swagger docs

	"github.com/omar221neva/FinalGp/internal/cluster"
	"github.com/omar221neva/FinalGp/internal/config"
	"github.com/omar221neva/FinalGp/internal/handler"
	"github.com/omar221neva/FinalGp/internal/logging"
	"github.com/omar221neva/FinalGp/internal/repository"
	"github.com/omar221neva/FinalGp/internal/service"
)

// @title Property Recommender API
// @version 1.0
// @description Content-based property recommendations from a user's booking history.
// @host localhost:8000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	store, err := repository.Open(connectCtx, cfg.Store)
	cancel()
	if err != nil {
		logging.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("connect store")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logging.Warn().Err(err).Msg("close store")
		}
	}()

	guarded := repository.NewBreakerStore(store, repository.BreakerSettings{
		Failures: cfg.Breaker.Failures,
		Timeout:  cfg.Breaker.Timeout,
	}, logging.WithComponent("store"))

	var scorer service.Scorer = service.LocalScorer{}
	if cfg.Recommend.NodeAddr != "" {
		scorer = &cluster.Scorer{Addr: cfg.Recommend.NodeAddr, Timeout: cfg.Recommend.NodeTimeout}
		logging.Info().Str("node", cfg.Recommend.NodeAddr).Msg("scoring delegated to node")
	}

	recSvc := service.NewRecommendService(guarded, scorer, cfg.Recommend.DefaultTopN, logging.WithComponent("recommend"))
	healthSvc := service.NewHealthService(guarded)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: handler.NewRouter(cfg,
			handler.NewRecommendHandler(recSvc),
			handler.NewHealthHandler(healthSvc),
		),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Str("driver", cfg.Store.Driver).Msg("http listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("http shutdown")
	}
}
