package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/models"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/service"

	"github.com/go-chi/chi/v5"
)

type PlaceHandler struct {
	svc *service.PlaceService
}

func NewPlaceHandler(s *service.PlaceService) *PlaceHandler { return &PlaceHandler{svc: s} }

// @Summary Get place
// @Tags places
// @Produce json
// @Param id path int true "placeId"
// @Success 200 {object} models.PlaceDoc
// @Router /places/{id} [get]
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}

// @Summary Buscar / listar lugares (paginado)
// @Tags places
// @Produce json
// @Param q query string false "búsqueda por nombre"
// @Param type query string false "filtrar por tipo"
// @Param tag query string false "filtrar por tag"
// @Param limit query int false "límite"
// @Param offset query int false "offset"
// @Success 200 {array} models.PlaceDoc
// @Router /places/search [get]
func (h *PlaceHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query().Get("q")
	typ := r.URL.Query().Get("type")
	tag := r.URL.Query().Get("tag")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	places, err := h.svc.Search(r.Context(), q, typ, tag, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(places)
}

// @Summary Top lugares (popularidad o rating)
// @Tags places
// @Produce json
// @Param metric query string false "popular|rating (default: popular)"
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.PlaceDoc
// @Router /places/top [get]
func (h *PlaceHandler) Top(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = "popular"
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	places, err := h.svc.Top(r.Context(), metric, limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(places)
}

// @Summary Trending (top 3 por cantidad de reviews)
// @Tags places
// @Produce json
// @Success 200 {array} models.PlaceDoc
// @Router /places/trending [get]
func (h *PlaceHandler) Trending(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	places, err := h.svc.Trending(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(places)
}

// @Summary Tipos de lugar permitidos
// @Tags places
// @Produce json
// @Success 200 {array} string
// @Router /places/types [get]
func (h *PlaceHandler) Types(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(models.PlaceTypes)
}

// ====== Crear / actualizar / borrar ======

// @Summary Crear lugar (requiere login)
// @Tags places
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.PlaceCreateRequest true "Datos del lugar"
// @Success 201 {object} models.PlaceDoc
// @Router /places [post]
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.PlaceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "body inválido (name requerido)", http.StatusBadRequest)
		return
	}

	creatorID := UserIDFromContext(r.Context())
	place, err := h.svc.Create(r.Context(), creatorID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(place)
}

// @Summary Actualizar lugar (ADMIN)
// @Tags places
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "placeId"
// @Param body body models.PlaceUpdateRequest true "Campos a actualizar"
// @Success 200 {object} models.PlaceDoc
// @Router /admin/places/{id} [put]
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req models.PlaceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	place, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if place == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(place)
}

// @Summary Borrar lugar y sus reviews (ADMIN)
// @Tags places
// @Security BearerAuth
// @Param id path int true "placeId"
// @Success 204
// @Router /admin/places/{id} [delete]
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrPlaceNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
