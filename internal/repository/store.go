package repository

import (
	"context"
	"errors"

	"github.com/omar221neva/FinalGp/internal/models"
)

// ErrMissingID is returned when a catalog row has no identifier.
var ErrMissingID = errors.New("property row without id")

// BookingReader returns the listing IDs a customer has booked.
// Duplicates are allowed; an unknown customer yields an empty slice.
type BookingReader interface {
	BookedListingIDs(ctx context.Context, customerID string) ([]string, error)
}

// ListingReader reads the property catalog.
type ListingReader interface {
	ListAll(ctx context.Context) ([]models.Listing, error)
	Sample(ctx context.Context, limit int) ([]models.Listing, error)
}

// Store is the full read contract the service depends on.
type Store interface {
	BookingReader
	ListingReader
	Close(ctx context.Context) error
}
