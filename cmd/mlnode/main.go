package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/omar221neva/FinalGp/internal/cluster"
	"github.com/omar221neva/FinalGp/internal/config"
	"github.com/omar221neva/FinalGp/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	log := logging.WithComponent("mlnode").With().Str("node_id", cfg.Node.ID).Logger()

	ln, err := net.Listen("tcp", cfg.Node.Addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Node.Addr).Msg("listen")
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("scoring node listening")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cluster.Serve(ctx, ln, log); err != nil {
		log.Fatal().Err(err).Msg("serve")
	}
	log.Info().Msg("scoring node stopped")
}
