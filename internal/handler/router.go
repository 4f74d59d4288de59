package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/omar221neva/FinalGp/internal/config"
	"github.com/omar221neva/FinalGp/internal/logging"
)

// NewRouter mounts every route of the API.
func NewRouter(cfg *config.Config, recH *RecommendHandler, healthH *HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
	}))

	r.Get("/health", Health)
	r.Get("/test-connection", healthH.TestConnection)

	r.Group(func(r chi.Router) {
		if !cfg.RateLimit.Disabled && cfg.RateLimit.Requests > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimit.Requests, cfg.RateLimit.Window))
		}
		r.Get("/recommend", recH.GetRecommendations)
		r.Get("/ws/recommend", recH.GetRecommendationsWS)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
