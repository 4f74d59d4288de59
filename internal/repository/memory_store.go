package repository

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/omar221neva/FinalGp/internal/models"
)

// MemoryStore keeps a fixed catalog and booking list in memory.
type MemoryStore struct {
	Listings []models.Listing
	Bookings []models.BookingRecord
}

// Fixture is the on-disk shape read by LoadFixture. Properties are raw rows
// so they go through the same validation as the database backends.
type Fixture struct {
	Properties []map[string]any       `json:"properties"`
	Bookings   []models.BookingRecord `json:"bookings"`
}

// LoadFixture reads a JSON fixture file into a MemoryStore.
func LoadFixture(path string) (*MemoryStore, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	s := &MemoryStore{Bookings: f.Bookings}
	for i, row := range f.Properties {
		l, err := listingFromDoc(row)
		if err != nil {
			return nil, fmt.Errorf("fixture property %d: %w", i, err)
		}
		s.Listings = append(s.Listings, l)
	}
	return s, nil
}

func (s *MemoryStore) BookedListingIDs(_ context.Context, customerID string) ([]string, error) {
	out := []string{}
	for _, b := range s.Bookings {
		if b.CustomerID == customerID && b.PropertyID != "" {
			out = append(out, b.PropertyID)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListAll(context.Context) ([]models.Listing, error) {
	out := make([]models.Listing, len(s.Listings))
	copy(out, s.Listings)
	return out, nil
}

func (s *MemoryStore) Sample(_ context.Context, limit int) ([]models.Listing, error) {
	n := min(limit, len(s.Listings))
	out := make([]models.Listing, n)
	copy(out, s.Listings[:n])
	return out, nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }
