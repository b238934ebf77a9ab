package service

import (
	"context"
	"time"

	"github.com/Nishat-Ahmad/CRITiQUE/internal/models"
	"github.com/Nishat-Ahmad/CRITiQUE/internal/repository"
)

// DashboardService arma las métricas del panel admin a partir de
// agregaciones sobre Mongo.
type DashboardService struct {
	reviews *repository.ReviewRepository
	places  *repository.PlaceRepository
}

func NewDashboardService(r *repository.ReviewRepository, p *repository.PlaceRepository) *DashboardService {
	return &DashboardService{
		reviews: r,
		places:  p,
	}
}

// Metrics junta todo lo que muestra el dashboard: reviews por día de
// los últimos nDays, % de reviews solo-estrellas, promedio por lugar y
// usuarios activos en las últimas 24h.
func (s *DashboardService) Metrics(ctx context.Context, nDays int) (*models.DashboardMetrics, error) {
	if nDays <= 0 {
		nDays = 14
	}

	days, err := s.reviewsPerDay(ctx, nDays)
	if err != nil {
		return nil, err
	}

	total, err := s.reviews.CountTotal(ctx)
	if err != nil {
		return nil, err
	}
	starOnly, err := s.reviews.CountStarOnly(ctx)
	if err != nil {
		return nil, err
	}
	var starOnlyRatio float64
	if total > 0 {
		starOnlyRatio = float64(starOnly) / float64(total) * 100
	}

	rows, err := s.reviews.AverageRatingPerPlace(ctx)
	if err != nil {
		return nil, err
	}
	// resolver nombres de lugar
	for i := range rows {
		p, err := s.places.GetByID(ctx, rows[i].PlaceID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			rows[i].Name = p.Name
		}
	}

	day24 := time.Now().UTC().Add(-24 * time.Hour).UnixMilli()
	active, err := s.reviews.DistinctUsersSince(ctx, day24)
	if err != nil {
		return nil, err
	}

	return &models.DashboardMetrics{
		TotalReviewsPerDay:    days,
		StarOnlyRatio:         starOnlyRatio,
		AverageRatingPerPlace: rows,
		ActiveUsersToday:      active,
	}, nil
}

// reviewsPerDay: un bucket por día UTC, del más viejo al más nuevo.
func (s *DashboardService) reviewsPerDay(ctx context.Context, nDays int) ([]models.DayCount, error) {
	now := time.Now().UTC()
	out := make([]models.DayCount, 0, nDays)

	for i := nDays - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		end := start.Add(24 * time.Hour)

		count, err := s.reviews.CountInRange(ctx, start.UnixMilli(), end.UnixMilli())
		if err != nil {
			return nil, err
		}
		out = append(out, models.DayCount{
			Date:  start.Format("2006-01-02"),
			Count: int(count),
		})
	}
	return out, nil
}
