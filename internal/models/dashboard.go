package models

// ====== Métricas del dashboard admin ======

type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD (UTC)
	Count int    `json:"count"`
}

type PlaceRatingRow struct {
	PlaceID   int     `json:"placeId"`
	Name      string  `json:"name"`
	AvgRating float64 `json:"avgRating"`
	Count     int     `json:"count"`
}

type DashboardMetrics struct {
	TotalReviewsPerDay    []DayCount       `json:"totalReviewsPerDay"`
	StarOnlyRatio         float64          `json:"starOnlyRatio"` // % de reviews sin texto
	AverageRatingPerPlace []PlaceRatingRow `json:"averageRatingPerPlace"`
	ActiveUsersToday      int              `json:"activeUsersToday"`
}
