package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection("bookings")}
}

func (r *BookingRepository) BookedListingIDs(ctx context.Context, customerID string) ([]string, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"customer_id": customerID},
		options.Find().SetProjection(bson.M{"property_id": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	out := []string{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		if id := asString(raw["property_id"]); id != "" {
			out = append(out, id)
		}
	}
	return out, cur.Err()
}
