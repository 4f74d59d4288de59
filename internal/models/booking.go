package models

// BookingRecord links a customer to a booked property.
// The same pair may appear more than once.
type BookingRecord struct {
	CustomerID string `json:"customer_id" bson:"customer_id"`
	PropertyID string `json:"property_id" bson:"property_id"`
}
