package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/omar221neva/FinalGp/internal/models"
)

// BreakerSettings configures the circuit breakers around store reads.
type BreakerSettings struct {
	Failures uint32
	Timeout  time.Duration
}

// BreakerStore trips after Failures consecutive store errors and fails fast
// with gobreaker.ErrOpenState until Timeout elapses.
type BreakerStore struct {
	next     Store
	bookings *gobreaker.CircuitBreaker[[]string]
	listings *gobreaker.CircuitBreaker[[]models.Listing]
}

func NewBreakerStore(next Store, s BreakerSettings, log zerolog.Logger) *BreakerStore {
	settings := func(name string) gobreaker.Settings {
		return gobreaker.Settings{
			Name:    name,
			Timeout: s.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= s.Failures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
					Msg("store circuit breaker changed state")
			},
		}
	}
	return &BreakerStore{
		next:     next,
		bookings: gobreaker.NewCircuitBreaker[[]string](settings("store.bookings")),
		listings: gobreaker.NewCircuitBreaker[[]models.Listing](settings("store.properties")),
	}
}

func (b *BreakerStore) BookedListingIDs(ctx context.Context, customerID string) ([]string, error) {
	return b.bookings.Execute(func() ([]string, error) {
		return b.next.BookedListingIDs(ctx, customerID)
	})
}

func (b *BreakerStore) ListAll(ctx context.Context) ([]models.Listing, error) {
	return b.listings.Execute(func() ([]models.Listing, error) {
		return b.next.ListAll(ctx)
	})
}

func (b *BreakerStore) Sample(ctx context.Context, limit int) ([]models.Listing, error) {
	return b.listings.Execute(func() ([]models.Listing, error) {
		return b.next.Sample(ctx, limit)
	})
}

func (b *BreakerStore) Close(ctx context.Context) error {
	return b.next.Close(ctx)
}
