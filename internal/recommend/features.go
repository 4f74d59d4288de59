package recommend

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/omar221neva/FinalGp/internal/models"
)

// FeatureDocument is the text used to vectorize a single listing.
type FeatureDocument struct {
	ListingID string
	Text      string
}

// BuildFeatures returns one document per listing, in catalog order.
// Later steps correlate rows by position, never by ID.
func BuildFeatures(catalog []models.Listing) []FeatureDocument {
	docs := make([]FeatureDocument, len(catalog))
	for i, l := range catalog {
		docs[i] = FeatureDocument{
			ListingID: l.ID,
			Text:      strings.Join([]string{l.Description, l.PropertyType, l.Amenities}, " "),
		}
	}
	return docs
}

// NormalizePictures turns the stored picture references into a list.
// Non-empty JSON text is decoded, a native list is passed through and
// anything else yields an empty list.
func NormalizePictures(src models.PictureSource) ([]string, error) {
	if src.Encoded != "" {
		var urls []string
		if err := json.Unmarshal([]byte(src.Encoded), &urls); err != nil {
			return nil, fmt.Errorf("decode picture_urls: %w", err)
		}
		if urls == nil {
			urls = []string{}
		}
		return urls, nil
	}
	if src.List != nil {
		return src.List, nil
	}
	return []string{}, nil
}

// ToDisplay builds the record returned to the caller.
func ToDisplay(l models.Listing, pictures []string) models.DisplayRecord {
	return models.DisplayRecord{
		ID:           l.ID,
		Name:         l.Name,
		Description:  l.Description,
		Price:        l.Price,
		City:         l.City,
		Country:      l.Country,
		PropertyType: l.PropertyType,
		Beds:         l.Beds,
		Bathrooms:    l.Bathrooms,
		PictureURLs:  pictures,
	}
}
