package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omar221neva/FinalGp/internal/models"
)

// PostgresStore reads the Supabase schema: bookings(customer_id, property_id)
// and properties with picture_urls/amenities kept as JSON text.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const selectProperties = `
SELECT id::text,
       coalesce(name, ''),
       coalesce(description, ''),
       coalesce(property_type, ''),
       coalesce(amenities::text, ''),
       price::float8,
       coalesce(city, ''),
       coalesce(country, ''),
       beds::int,
       bathrooms::float8,
       coalesce(picture_urls::text, '')
FROM properties`

func (s *PostgresStore) BookedListingIDs(ctx context.Context, customerID string) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT property_id::text FROM bookings WHERE customer_id::text = $1 AND property_id IS NOT NULL`,
		customerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan bookings: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]models.Listing, error) {
	return s.query(ctx, selectProperties+` ORDER BY id`)
}

func (s *PostgresStore) Sample(ctx context.Context, limit int) ([]models.Listing, error) {
	return s.query(ctx, selectProperties+` LIMIT $1`, limit)
}

func (s *PostgresStore) query(ctx context.Context, sql string, args ...any) ([]models.Listing, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query properties: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanListing)
	if err != nil {
		return nil, fmt.Errorf("scan properties: %w", err)
	}
	if out == nil {
		out = []models.Listing{}
	}
	return out, nil
}

func scanListing(row pgx.CollectableRow) (models.Listing, error) {
	var (
		l        models.Listing
		id       *string
		pictures string
	)
	err := row.Scan(&id, &l.Name, &l.Description, &l.PropertyType, &l.Amenities,
		&l.Price, &l.City, &l.Country, &l.Beds, &l.Bathrooms, &pictures)
	if err != nil {
		return models.Listing{}, err
	}
	if id == nil || *id == "" {
		return models.Listing{}, ErrMissingID
	}
	l.ID = *id
	l.Pictures = models.PictureSource{Encoded: pictures}
	return l, nil
}

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}
