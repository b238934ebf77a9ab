package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/service"

	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler { return &ReviewHandler{svc: s} }

type reviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// @Summary Publicar review de un lugar
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "placeId"
// @Param body body reviewRequest true "review"
// @Success 201 {object} models.ReviewDoc
// @Router /places/{id}/reviews [post]
func (h *ReviewHandler) PostReview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	placeID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	userID := UserIDFromContext(r.Context())

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	rv, err := h.svc.Add(r.Context(), userID, placeID, req.Rating, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrPlaceNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), 400)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rv)
}

// @Summary Reviews de un lugar (más recientes primero)
// @Tags reviews
// @Produce json
// @Param id path int true "placeId"
// @Success 200 {array} models.Review
// @Router /places/{id}/reviews [get]
func (h *ReviewHandler) GetPlaceReviews(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	placeID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	list, err := h.svc.ListByPlace(r.Context(), placeID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Mis reviews
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 100)"
// @Param offset query int false "offset"
// @Success 200 {array} models.ReviewDoc
// @Router /me/reviews [get]
func (h *ReviewHandler) GetMyReviews(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 100
	}

	list, err := h.svc.ListByUser(r.Context(), userID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

type reviewEditRequest struct {
	Rating *int    `json:"rating"`
	Text   *string `json:"text"`
}

// @Summary Editar review propia
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Param id path int true "reviewId"
// @Param body body reviewEditRequest true "campos a editar"
// @Success 204
// @Router /reviews/{id} [put]
func (h *ReviewHandler) EditReview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	reviewID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	userID := UserIDFromContext(r.Context())

	var req reviewEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	err := h.svc.Edit(r.Context(), reviewID, userID, req.Rating, req.Text)
	if err != nil {
		writeReviewError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Borrar review (autor o ADMIN)
// @Tags reviews
// @Security BearerAuth
// @Param id path int true "reviewId"
// @Success 204
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	reviewID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	userID := UserIDFromContext(r.Context())
	role := RoleFromContext(r.Context())

	err := h.svc.Delete(r.Context(), reviewID, userID, role)
	if err != nil {
		writeReviewError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeReviewError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrReviewNotFound):
		http.NotFound(w, r)
	case errors.Is(err, service.ErrNotAuthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}
