package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"

	"github.com/omar221neva/FinalGp/internal/logging"
	"github.com/omar221neva/FinalGp/internal/service"
)

var validate = validator.New()

type recommendQuery struct {
	UserID string `validate:"required"`
	TopN   *int
}

var errBadTopN = errors.New("top_n must be an integer")

// parseRecommendQuery reads user_id and top_n. A missing top_n keeps the
// service default; a non-integer one is rejected.
func parseRecommendQuery(r *http.Request) (service.RecRequest, error) {
	q := recommendQuery{UserID: r.URL.Query().Get("user_id")}
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return service.RecRequest{}, errBadTopN
		}
		q.TopN = &n
	}
	if err := validate.Struct(q); err != nil {
		return service.RecRequest{}, errors.New("user_id is required")
	}
	return service.RecRequest{UserID: q.UserID, TopN: q.TopN}, nil
}

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Property recommendations for a user
// @Tags recommend
// @Produce json
// @Param user_id query string true "customer id"
// @Param top_n query int false "number of listings to return (default 5)"
// @Success 200 {array} models.DisplayRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /recommend [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	req, err := parseRecommendQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsMessage is one frame of the streaming endpoint.
type wsMessage struct {
	Type        string    `json:"type"`
	UserID      string    `json:"userId,omitempty"`
	Stage       string    `json:"stage,omitempty"`
	Items       any       `json:"items,omitempty"`
	Error       string    `json:"error,omitempty"`
	GeneratedAt time.Time `json:"generatedAt,omitzero"`
}

// @Summary Property recommendations over WebSocket
// @Description Emits start, progress and a final recommendations or error message.
// @Tags recommend
// @Param user_id query string true "customer id"
// @Param top_n query int false "number of listings to return (default 5)"
// @Success 101
// @Failure 400 {object} models.ErrorResponse
// @Router /ws/recommend [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	req, err := parseRecommendQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		logging.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	send := func(m wsMessage) {
		if err := conn.WriteJSON(m); err != nil {
			logging.Debug().Err(err).Str("type", m.Type).Msg("websocket write")
		}
	}

	send(wsMessage{Type: "start", UserID: req.UserID})

	items, err := h.svc.RecommendWithProgress(r.Context(), req, func(stage string) {
		send(wsMessage{Type: "progress", Stage: stage})
	})
	if err != nil {
		send(wsMessage{Type: "error", Error: err.Error()})
		return
	}

	send(wsMessage{
		Type:        "recommendations",
		UserID:      req.UserID,
		Items:       items,
		GeneratedAt: time.Now().UTC(),
	})
}
