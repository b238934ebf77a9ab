package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/cache"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/models"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotAuthorized  = errors.New("not authorized")
)

type ReviewService struct {
	reviews *repository.ReviewRepository
	places  *repository.PlaceRepository
	users   *repository.UserRepository
}

func NewReviewService(
	r *repository.ReviewRepository,
	p *repository.PlaceRepository,
	u *repository.UserRepository,
) *ReviewService {
	return &ReviewService{
		reviews: r,
		places:  p,
		users:   u,
	}
}

// Add inserta una review nueva (un usuario puede volver a reseñar el
// mismo lugar: el recomendador resuelve duplicados con last-write-wins)
// y mantiene ratingStats del lugar + totalReviews del autor.
func (s *ReviewService) Add(ctx context.Context, userID string, placeID, rating int, text string) (*models.ReviewDoc, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating debe estar entre 1 y 5")
	}

	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}

	nextID, err := s.reviews.GetNextReviewID(ctx)
	if err != nil {
		return nil, err
	}

	rv := &models.ReviewDoc{
		ReviewID:  nextID,
		PlaceID:   placeID,
		UserID:    userID,
		Rating:    rating,
		Text:      text,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.reviews.Insert(ctx, rv); err != nil {
		return nil, err
	}

	// stats incrementales del lugar
	if place.RatingStats == nil {
		place.RatingStats = &models.RatingStats{}
	}
	rs := place.RatingStats
	total := rs.Average*float64(rs.Count) + float64(rating)
	rs.Count++
	rs.Average = total / float64(rs.Count)

	nowStr := time.Now().UTC().Format(time.RFC3339)
	rs.LastRatedAt = nowStr
	place.UpdatedAt = nowStr

	if err := s.places.Update(ctx, place); err != nil {
		return nil, err
	}

	if err := s.users.IncTotalReviews(ctx, userID, 1); err != nil {
		return nil, err
	}

	cache.BumpCatalogVersion(ctx)

	return rv, nil
}

// Edit: solo el autor puede editar su review.
func (s *ReviewService) Edit(ctx context.Context, reviewID int, userID string, rating *int, text *string) error {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if rv == nil {
		return ErrReviewNotFound
	}
	if rv.UserID != userID {
		return ErrNotAuthorized
	}

	update := bson.M{}
	if text != nil {
		update["text"] = *text
	}
	if rating != nil {
		if *rating < 1 || *rating > 5 {
			return fmt.Errorf("rating debe estar entre 1 y 5")
		}
		update["rating"] = *rating
	}
	if len(update) == 0 {
		return nil
	}

	if err := s.reviews.UpdateByID(ctx, reviewID, update); err != nil {
		return err
	}

	// si cambió el rating hay que recomponer el promedio del lugar
	if rating != nil && *rating != rv.Rating {
		if err := s.adjustPlaceAverage(ctx, rv.PlaceID, float64(*rating)-float64(rv.Rating), 0); err != nil {
			return err
		}
	}

	cache.BumpCatalogVersion(ctx)

	return nil
}

// Delete: el autor o un admin.
func (s *ReviewService) Delete(ctx context.Context, reviewID int, userID, role string) error {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if rv == nil {
		return ErrReviewNotFound
	}
	if rv.UserID != userID && role != "admin" {
		return ErrNotAuthorized
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}

	if err := s.adjustPlaceAverage(ctx, rv.PlaceID, -float64(rv.Rating), -1); err != nil {
		return err
	}
	if err := s.users.IncTotalReviews(ctx, rv.UserID, -1); err != nil {
		return err
	}

	cache.BumpCatalogVersion(ctx)

	return nil
}

// ListByPlace devuelve las reviews de un lugar con el nombre del autor
// resuelto, más recientes primero.
func (s *ReviewService) ListByPlace(ctx context.Context, placeID int) ([]models.Review, error) {
	docs, err := s.reviews.GetByPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Review, 0, len(docs))
	names := make(map[string]string)
	for _, d := range docs {
		name, ok := names[d.UserID]
		if !ok {
			u, err := s.users.FindByID(ctx, d.UserID)
			if err != nil {
				return nil, err
			}
			if u != nil {
				name = u.Name
			} else {
				// usuario borrado: mostramos el id
				name = d.UserID
			}
			names[d.UserID] = name
		}
		out = append(out, models.Review{
			ReviewID:  d.ReviewID,
			PlaceID:   d.PlaceID,
			UserID:    d.UserID,
			UserName:  name,
			Rating:    d.Rating,
			Text:      d.Text,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.ReviewDoc, error) {
	return s.reviews.GetByUser(ctx, userID, limit, offset)
}

// adjustPlaceAverage recompone average/count del lugar tras editar o
// borrar una review. ratingDelta es la diferencia sobre la suma total,
// countDelta es 0 (edición) o -1 (borrado).
func (s *ReviewService) adjustPlaceAverage(ctx context.Context, placeID int, ratingDelta float64, countDelta int) error {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return err
	}
	if place == nil || place.RatingStats == nil {
		return nil
	}
	rs := place.RatingStats

	total := rs.Average*float64(rs.Count) + ratingDelta
	rs.Count += countDelta
	if rs.Count > 0 {
		rs.Average = total / float64(rs.Count)
	} else {
		rs.Count = 0
		rs.Average = 0
	}
	place.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	return s.places.Update(ctx, place)
}
