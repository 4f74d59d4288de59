package handler

import (
	"net/http"

	"github.com/omar221neva/FinalGp/internal/service"
)

// @Summary Healthcheck
// @Tags health
// @Success 200
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type HealthHandler struct {
	svc *service.HealthService
}

func NewHealthHandler(s *service.HealthService) *HealthHandler {
	return &HealthHandler{svc: s}
}

// @Summary Check the data store by reading one property
// @Tags health
// @Produce json
// @Success 200 {object} models.ConnectionStatus
// @Router /test-connection [get]
func (h *HealthHandler) TestConnection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.TestConnection(r.Context()))
}
