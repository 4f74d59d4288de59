package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/omar221neva/FinalGp/internal/models"
)

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection("properties")}
}

// ListAll returns the whole catalog in natural order.
func (r *PropertyRepository) ListAll(ctx context.Context) ([]models.Listing, error) {
	return r.find(ctx, options.Find())
}

func (r *PropertyRepository) Sample(ctx context.Context, limit int) ([]models.Listing, error) {
	return r.find(ctx, options.Find().SetLimit(int64(limit)))
}

func (r *PropertyRepository) find(ctx context.Context, opts *options.FindOptions) ([]models.Listing, error) {
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find properties: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Listing{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode property: %w", err)
		}
		l, err := listingFromDoc(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, cur.Err()
}
