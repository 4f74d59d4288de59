package service

import (
	"context"

	"github.com/omar221neva/FinalGp/internal/models"
	"github.com/omar221neva/FinalGp/internal/recommend"
	"github.com/omar221neva/FinalGp/internal/repository"
)

type HealthService struct {
	listings repository.ListingReader
}

func NewHealthService(listings repository.ListingReader) *HealthService {
	return &HealthService{listings: listings}
}

// TestConnection reads one property to check the store end to end.
// Failures are reported in the status, never returned.
func (s *HealthService) TestConnection(ctx context.Context) models.ConnectionStatus {
	sample, err := s.listings.Sample(ctx, 1)
	if err != nil {
		return models.ConnectionStatus{Status: "error", Message: err.Error()}
	}
	if len(sample) == 0 {
		return models.ConnectionStatus{Status: "connected but no data"}
	}

	out := make([]models.DisplayRecord, 0, len(sample))
	for _, l := range sample {
		pics, err := recommend.NormalizePictures(l.Pictures)
		if err != nil {
			pics = []string{}
		}
		out = append(out, recommend.ToDisplay(l, pics))
	}
	return models.ConnectionStatus{Status: "connected", Sample: out}
}
