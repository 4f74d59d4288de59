package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/omar221neva/FinalGp/internal/config"
	"github.com/omar221neva/FinalGp/internal/models"
	"github.com/omar221neva/FinalGp/internal/repository"
	"github.com/omar221neva/FinalGp/internal/service"
)

func testStore() *repository.MemoryStore {
	return &repository.MemoryStore{
		Listings: []models.Listing{
			{ID: "1", Description: "cozy beach house", PropertyType: "House", Amenities: "wifi pool",
				Pictures: models.PictureSource{Encoded: `["a.jpg"]`}},
			{ID: "2", Description: "modern city apartment", PropertyType: "Apartment", Amenities: "wifi gym"},
			{ID: "3", Description: "beach cottage near sea", PropertyType: "House", Amenities: "pool",
				Pictures: models.PictureSource{List: []string{"b.jpg"}}},
		},
		Bookings: []models.BookingRecord{{CustomerID: "u1", PropertyID: "1"}},
	}
}

func newTestRouter(store repository.Store) http.Handler {
	cfg := &config.Config{
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		RateLimit: config.RateLimitConfig{Disabled: true},
	}
	recSvc := service.NewRecommendService(store, nil, 5, zerolog.Nop())
	return NewRouter(cfg,
		NewRecommendHandler(recSvc),
		NewHealthHandler(service.NewHealthService(store)),
	)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetRecommendations(t *testing.T) {
	rec := get(t, newTestRouter(testStore()), "/recommend?user_id=u1&top_n=5")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var items []models.DisplayRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 2 || items[0].ID != "3" {
		t.Fatalf("items = %+v", items)
	}
	if len(items[0].PictureURLs) != 1 || items[0].PictureURLs[0] != "b.jpg" {
		t.Errorf("picture_urls = %v", items[0].PictureURLs)
	}
}

func TestGetRecommendations_EmptyResultIsArray(t *testing.T) {
	rec := get(t, newTestRouter(testStore()), "/recommend?user_id=nobody")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestGetRecommendations_BadRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"missing user", "/recommend", "user_id is required"},
		{"non-integer top_n", "/recommend?user_id=u1&top_n=abc", "top_n must be an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, newTestRouter(testStore()), tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body models.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tt.want {
				t.Errorf("error = %q, want %q", body.Error, tt.want)
			}
		})
	}
}

type brokenStore struct{ repository.MemoryStore }

func (brokenStore) BookedListingIDs(context.Context, string) ([]string, error) {
	return nil, errors.New("store offline")
}

func TestGetRecommendations_StoreFailure(t *testing.T) {
	rec := get(t, newTestRouter(&brokenStore{}), "/recommend?user_id=u1")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(body.Error, "store offline") {
		t.Errorf("error = %q", body.Error)
	}
}

func TestHealthAndTestConnection(t *testing.T) {
	h := newTestRouter(testStore())

	if rec := get(t, h, "/health"); rec.Code != http.StatusOK {
		t.Errorf("/health status = %d", rec.Code)
	}

	rec := get(t, h, "/test-connection")
	if rec.Code != http.StatusOK {
		t.Fatalf("/test-connection status = %d", rec.Code)
	}
	var st models.ConnectionStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Status != "connected" || len(st.Sample) != 1 || st.Sample[0].ID != "1" {
		t.Errorf("status = %+v", st)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(testStore())
	req := httptest.NewRequest(http.MethodOptions, "/recommend", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials = %q", got)
	}
}

func TestGetRecommendationsWS(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(testStore()))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/recommend?user_id=u1&top_n=1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	var types []string
	var last struct {
		Type  string                 `json:"type"`
		Items []models.DisplayRecord `json:"items"`
	}
	for {
		if err := conn.ReadJSON(&last); err != nil {
			t.Fatalf("read: %v", err)
		}
		types = append(types, last.Type)
		if last.Type == "recommendations" || last.Type == "error" {
			break
		}
	}

	want := []string{"start", "progress", "progress", "progress", "recommendations"}
	if strings.Join(types, ",") != strings.Join(want, ",") {
		t.Errorf("message types = %v, want %v", types, want)
	}
	if len(last.Items) != 1 || last.Items[0].ID != "3" {
		t.Errorf("items = %+v", last.Items)
	}
}
