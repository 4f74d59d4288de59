package recommend

import (
	"reflect"
	"testing"

	"github.com/omar221neva/FinalGp/internal/models"
)

func TestBuildFeatures(t *testing.T) {
	catalog := []models.Listing{
		{ID: "1", Description: "beach villa", PropertyType: "villa", Amenities: "pool"},
		{ID: "2"},
		{ID: "3", Description: "loft", Amenities: `["wifi","kitchen"]`},
	}

	docs := BuildFeatures(catalog)
	if len(docs) != len(catalog) {
		t.Fatalf("len(docs) = %d, want %d", len(docs), len(catalog))
	}

	want := []string{"beach villa villa pool", "  ", `loft  ["wifi","kitchen"]`}
	for i, d := range docs {
		if d.ListingID != catalog[i].ID {
			t.Errorf("docs[%d].ListingID = %q, want %q", i, d.ListingID, catalog[i].ID)
		}
		if d.Text != want[i] {
			t.Errorf("docs[%d].Text = %q, want %q", i, d.Text, want[i])
		}
	}
}

func TestNormalizePictures(t *testing.T) {
	tests := []struct {
		name    string
		src     models.PictureSource
		want    []string
		wantErr bool
	}{
		{
			name: "decodes JSON text",
			src:  models.PictureSource{Encoded: `["a.jpg","b.jpg"]`},
			want: []string{"a.jpg", "b.jpg"},
		},
		{
			name: "passes native list through",
			src:  models.PictureSource{List: []string{"c.jpg"}},
			want: []string{"c.jpg"},
		},
		{
			name: "empty source yields empty list",
			src:  models.PictureSource{},
			want: []string{},
		},
		{
			name: "JSON null yields empty list",
			src:  models.PictureSource{Encoded: "null"},
			want: []string{},
		},
		{
			name:    "malformed JSON fails",
			src:     models.PictureSource{Encoded: "not-json"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePictures(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NormalizePictures() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizePictures() error = %v", err)
			}
			if got == nil {
				t.Fatal("NormalizePictures() = nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizePictures() = %v, want %v", got, tt.want)
			}
		})
	}
}
