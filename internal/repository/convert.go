package repository

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/omar221neva/FinalGp/internal/models"
)

// safe casting helpers: store rows arrive loosely typed

func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case primitive.ObjectID:
		return x.Hex()
	default:
		return fmt.Sprint(x)
	}
}

func asFloatPtr(v any) *float64 {
	var f float64
	switch x := v.(type) {
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case int:
		f = float64(x)
	case float64:
		f = x
	case primitive.Decimal128:
		parsed, err := strconv.ParseFloat(x.String(), 64)
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}

func asIntPtr(v any) *int {
	f := asFloatPtr(v)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// asText flattens amenities: text is kept, lists are joined with spaces.
func asText(v any) string {
	switch x := v.(type) {
	case primitive.A:
		return joinValues(x)
	case []any:
		return joinValues(x)
	case []string:
		return strings.Join(x, " ")
	default:
		return asString(v)
	}
}

func joinValues(vals []any) string {
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		parts = append(parts, asString(v))
	}
	return strings.Join(parts, " ")
}

func asPictures(v any) models.PictureSource {
	switch x := v.(type) {
	case string:
		return models.PictureSource{Encoded: x}
	case []string:
		return models.PictureSource{List: x}
	case primitive.A:
		return models.PictureSource{List: stringList(x)}
	case []any:
		return models.PictureSource{List: stringList(x)}
	default:
		return models.PictureSource{}
	}
}

func stringList(vals []any) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, asString(v))
	}
	return out
}

// listingFromDoc validates a raw property row. The id may be stored as
// "id" or as Mongo's "_id".
func listingFromDoc(doc bson.M) (models.Listing, error) {
	rawID, ok := doc["id"]
	if !ok || rawID == nil {
		rawID = doc["_id"]
	}
	id := asString(rawID)
	if id == "" {
		return models.Listing{}, ErrMissingID
	}

	return models.Listing{
		ID:           id,
		Name:         asString(doc["name"]),
		Description:  asString(doc["description"]),
		PropertyType: asString(doc["property_type"]),
		Amenities:    asText(doc["amenities"]),
		Price:        asFloatPtr(doc["price"]),
		City:         asString(doc["city"]),
		Country:      asString(doc["country"]),
		Beds:         asIntPtr(doc["beds"]),
		Bathrooms:    asFloatPtr(doc["bathrooms"]),
		Pictures:     asPictures(doc["picture_urls"]),
	}, nil
}
