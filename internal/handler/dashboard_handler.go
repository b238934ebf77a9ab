package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/service"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(s *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: s}
}

// @Summary Métricas del panel admin
// @Description Reviews por día, ratio solo-estrellas, promedio por lugar y usuarios activos (24h)
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param days query int false "días hacia atrás (default: 14)"
// @Success 200 {object} models.DashboardMetrics
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	metrics, err := h.svc.Metrics(r.Context(), days)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(metrics)
}
