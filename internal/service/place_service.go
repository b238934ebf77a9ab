package service

import (
	"context"
	"errors"
	"time"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/cache"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/models"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/repository"
)

var ErrPlaceNotFound = errors.New("place not found")

type PlaceService struct {
	places  *repository.PlaceRepository
	reviews *repository.ReviewRepository
	users   *repository.UserRepository
}

func NewPlaceService(
	p *repository.PlaceRepository,
	r *repository.ReviewRepository,
	u *repository.UserRepository,
) *PlaceService {
	return &PlaceService{
		places:  p,
		reviews: r,
		users:   u,
	}
}

func (s *PlaceService) Create(ctx context.Context, creatorID string, req *models.PlaceCreateRequest) (*models.PlaceDoc, error) {
	nextID, err := s.places.GetNextPlaceID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p := &models.PlaceDoc{
		PlaceID:     nextID,
		Name:        req.Name,
		Type:        req.Type,
		Address:     req.Address,
		Photo:       req.Photo,
		Tags:        req.Tags,
		Description: req.Description,
		CreatorID:   creatorID,
		RatingStats: &models.RatingStats{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.places.Insert(ctx, p); err != nil {
		return nil, err
	}

	// el catálogo cambió: invalida recomendaciones cacheadas
	cache.BumpCatalogVersion(ctx)

	return p, nil
}

func (s *PlaceService) Get(ctx context.Context, placeID int) (*models.PlaceDoc, error) {
	return s.places.GetByID(ctx, placeID)
}

func (s *PlaceService) Search(ctx context.Context, q, typ, tag string, limit, offset int) ([]models.PlaceDoc, error) {
	return s.places.Search(ctx, q, typ, tag, limit, offset)
}

func (s *PlaceService) Top(ctx context.Context, metric string, limit int) ([]models.PlaceDoc, error) {
	return s.places.Top(ctx, metric, limit)
}

// Trending: top 3 por cantidad de reviews (la sección del home).
func (s *PlaceService) Trending(ctx context.Context) ([]models.PlaceDoc, error) {
	return s.places.Top(ctx, "popular", 3)
}

func (s *PlaceService) Update(ctx context.Context, placeID int, req *models.PlaceUpdateRequest) (*models.PlaceDoc, error) {
	p, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.Photo != nil {
		p.Photo = *req.Photo
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.places.Update(ctx, p); err != nil {
		return nil, err
	}

	cache.BumpCatalogVersion(ctx)

	return p, nil
}

// Delete borra el lugar y sus reviews en cascada, descontando el
// contador de reviews de cada autor (solo admin llega acá).
func (s *PlaceService) Delete(ctx context.Context, placeID int) error {
	p, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPlaceNotFound
	}

	deleted, err := s.reviews.DeleteByPlace(ctx, placeID)
	if err != nil {
		return err
	}
	for _, rv := range deleted {
		if err := s.users.IncTotalReviews(ctx, rv.UserID, -1); err != nil {
			return err
		}
	}

	if err := s.places.Delete(ctx, placeID); err != nil {
		return err
	}

	cache.BumpCatalogVersion(ctx)

	return nil
}
