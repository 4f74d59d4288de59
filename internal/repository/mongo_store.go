package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore serves bookings and properties from one Mongo database.
type MongoStore struct {
	*BookingRepository
	*PropertyRepository
	client *mongo.Client
}

func NewMongoStore(client *mongo.Client, db *mongo.Database) *MongoStore {
	return &MongoStore{
		BookingRepository:  NewBookingRepository(db),
		PropertyRepository: NewPropertyRepository(db),
		client:             client,
	}
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
