package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones híbridas para el usuario logueado
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param k query int false "cantidad de recomendaciones (máx 20)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecItem
// @Router /me/recommendations [get]
func (h *RecommendHandler) GetMyRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.RecommendForUser(r.Context(), service.RecRequest{
		UserID:  userID,
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Recomendaciones híbridas para cualquier usuario (ADMIN)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param id path string true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 20)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecItem
// @Router /users/{id}/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := chi.URLParam(r, "id")
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.RecommendForUser(r.Context(), service.RecRequest{
		UserID:  userID,
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Lugares parecidos por contenido ("más como este")
// @Tags recommend
// @Produce json
// @Param id path int true "placeId"
// @Param k query int false "cantidad (default 3)"
// @Success 200 {array} int
// @Router /places/{id}/similar [get]
func (h *RecommendHandler) GetSimilarPlaces(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	placeID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))

	ids, err := h.svc.SimilarPlaces(r.Context(), placeID, k)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(ids)
}

// @Summary "A los que les gustó este lugar también les gustó…"
// @Tags recommend
// @Produce json
// @Param id path int true "placeId"
// @Param k query int false "cantidad (default 3)"
// @Success 200 {array} int
// @Router /places/{id}/also-liked [get]
func (h *RecommendHandler) GetAlsoLiked(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	placeID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))

	ids, err := h.svc.AlsoLiked(r.Context(), placeID, k)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(ids)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param id path string true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 20)"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	userID := chi.URLParam(r, "id")
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, armando snapshot…",
	})

	// Progreso por etapa del híbrido
	for i, stage := range []string{"collaborative", "preferences", "popularity"} {
		time.Sleep(200 * time.Millisecond)
		conn.WriteJSON(map[string]any{
			"type":  "progress",
			"stage": i + 1,
			"msg":   stage,
		})
	}

	items, err := h.svc.RecommendForUser(r.Context(), service.RecRequest{
		UserID:  userID,
		K:       k,
		Refresh: true,
	})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final con recomendaciones
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"userId":      userID,
		"items":       items,
		"generatedAt": time.Now(),
	})
}

// @Summary Historial de recomendaciones del usuario logueado
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 10)"
// @Success 200 {array} models.Recommendation
// @Router /me/recommendations/history [get]
func (h *RecommendHandler) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recs, err := h.svc.History(r.Context(), userID, int64(limit))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(recs)
}
