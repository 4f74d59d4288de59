package models

// PictureSource holds picture references as they came from the store:
// JSON text (text/jsonb column) or a native list (Mongo array).
type PictureSource struct {
	Encoded string   `json:"encoded,omitempty" bson:"encoded,omitempty"`
	List    []string `json:"list,omitempty" bson:"list,omitempty"`
}

// Listing is a catalog row validated at the store boundary.
// Missing text fields are empty strings; display numbers stay nil when absent.
type Listing struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	PropertyType string        `json:"property_type"`
	Amenities    string        `json:"amenities"`
	Price        *float64      `json:"price,omitempty"`
	City         string        `json:"city"`
	Country      string        `json:"country"`
	Beds         *int          `json:"beds,omitempty"`
	Bathrooms    *float64      `json:"bathrooms,omitempty"`
	Pictures     PictureSource `json:"pictures"`
}

// DisplayRecord is what the API returns for each recommended listing.
type DisplayRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	PropertyType string   `json:"property_type"`
	Beds         *int     `json:"beds"`
	Bathrooms    *float64 `json:"bathrooms"`
	PictureURLs  []string `json:"picture_urls"`
}
