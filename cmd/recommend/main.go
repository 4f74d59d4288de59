// Command recommend prints recommendations for one user as JSON.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/omar221neva/FinalGp/internal/config"
	"github.com/omar221neva/FinalGp/internal/logging"
	"github.com/omar221neva/FinalGp/internal/repository"
	"github.com/omar221neva/FinalGp/internal/service"
)

func main() {
	user := flag.String("user", "", "customer id")
	topN := flag.Int("n", -1, "number of listings (default from config)")
	fixture := flag.String("fixture", "", "read bookings and properties from a JSON fixture instead of the store")
	flag.Parse()

	if *user == "" {
		flag.Usage()
		os.Exit(2)
	}

	logging.Init(logging.Config{Level: "warn", Format: "console", Output: os.Stderr})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	defaultTopN := 5
	var store repository.Store
	if *fixture != "" {
		s, err := repository.LoadFixture(*fixture)
		if err != nil {
			logging.Fatal().Err(err).Msg("load fixture")
		}
		store = s
	} else {
		cfg, err := config.Load()
		if err != nil {
			logging.Fatal().Err(err).Msg("load config")
		}
		defaultTopN = cfg.Recommend.DefaultTopN
		store, err = repository.Open(ctx, cfg.Store)
		if err != nil {
			logging.Fatal().Err(err).Msg("connect store")
		}
	}
	defer store.Close(context.Background())

	req := service.RecRequest{UserID: *user}
	if *topN >= 0 {
		req.TopN = topN
	}

	svc := service.NewRecommendService(store, nil, defaultTopN, logging.WithComponent("cli"))
	items, err := svc.Recommend(ctx, req)
	if err != nil {
		logging.Error().Err(err).Msg("recommend")
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		logging.Fatal().Err(err).Msg("write output")
	}
}
