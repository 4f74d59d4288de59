package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/omar221neva/FinalGp/internal/metrics"
	"github.com/omar221neva/FinalGp/internal/models"
	"github.com/omar221neva/FinalGp/internal/recommend"
	"github.com/omar221neva/FinalGp/internal/repository"
)

// Scorer runs the pure recommendation computation, in process or remotely.
type Scorer interface {
	Score(ctx context.Context, userID string, bookedIDs []string, catalog []models.Listing, topN int) ([]models.DisplayRecord, error)
}

// LocalScorer computes in the calling goroutine.
type LocalScorer struct{}

func (LocalScorer) Score(_ context.Context, _ string, bookedIDs []string, catalog []models.Listing, topN int) ([]models.DisplayRecord, error) {
	return recommend.Recommend(bookedIDs, catalog, topN)
}

// Progress stages reported to callers that stream the computation.
const (
	StageBookings = "bookings_loaded"
	StageCatalog  = "catalog_loaded"
	StageRanked   = "ranked"
)

// RecRequest holds the request parameters. TopN nil means "use the default".
type RecRequest struct {
	UserID string
	TopN   *int
}

type RecommendService struct {
	store       repository.Store
	scorer      Scorer
	defaultTopN int
	log         zerolog.Logger
}

func NewRecommendService(store repository.Store, scorer Scorer, defaultTopN int, log zerolog.Logger) *RecommendService {
	if scorer == nil {
		scorer = LocalScorer{}
	}
	return &RecommendService{
		store:       store,
		scorer:      scorer,
		defaultTopN: defaultTopN,
		log:         log,
	}
}

// Recommend returns the ranked listings for a user.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.DisplayRecord, error) {
	return s.RecommendWithProgress(ctx, req, nil)
}

// RecommendWithProgress is Recommend with a callback invoked after each stage.
// A user without bookings or an empty catalog yields an empty list; any
// store or computation failure yields an error and no items.
func (s *RecommendService) RecommendWithProgress(ctx context.Context, req RecRequest, progress func(stage string)) (items []models.DisplayRecord, err error) {
	start := time.Now()
	outcome := "ok"
	defer func() {
		if err != nil {
			outcome = "error"
		} else if len(items) == 0 {
			outcome = "empty"
		}
		metrics.RecommendDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
		if err == nil {
			metrics.RecommendResultSize.Observe(float64(len(items)))
		}
	}()

	report := func(stage string) {
		if progress != nil {
			progress(stage)
		}
	}

	topN := s.defaultTopN
	if req.TopN != nil {
		topN = *req.TopN
	}

	booked, err := s.store.BookedListingIDs(ctx, req.UserID)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("bookings").Inc()
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	report(StageBookings)
	if len(booked) == 0 {
		s.log.Debug().Str("user_id", req.UserID).Msg("user has no bookings")
		return []models.DisplayRecord{}, nil
	}

	catalog, err := s.store.ListAll(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("properties").Inc()
		return nil, fmt.Errorf("load properties: %w", err)
	}
	metrics.CatalogSize.Set(float64(len(catalog)))
	report(StageCatalog)
	if len(catalog) == 0 {
		return []models.DisplayRecord{}, nil
	}

	items, err = s.scorer.Score(ctx, req.UserID, booked, catalog, topN)
	if err != nil {
		var cerr *recommend.ComputationError
		if errors.As(err, &cerr) {
			s.log.Error().Err(err).Str("user_id", req.UserID).Str("stage", cerr.Stage).Msg("recommendation failed")
		} else {
			s.log.Error().Err(err).Str("user_id", req.UserID).Msg("recommendation failed")
		}
		return nil, err
	}
	report(StageRanked)

	s.log.Info().Str("user_id", req.UserID).Int("bookings", len(booked)).
		Int("catalog", len(catalog)).Int("items", len(items)).
		Dur("elapsed", time.Since(start)).Msg("recommendation served")
	return items, nil
}
