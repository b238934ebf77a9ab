package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHybridColdStartWithPreferences(t *testing.T) {
	// sin ratings: se saltea el colaborativo y cae directo a preferencias
	h := NewHybridRecommender(testPlaces(), nil)

	got := h.Recommend("nuevo", []string{"cafe"}, 3)
	// solo Zen Cafe matchea "cafe" (case-insensitive sobre type/tags)
	require.Equal(t, []int{2}, got)
}

func TestHybridPreferencesAreCaseInsensitive(t *testing.T) {
	h := NewHybridRecommender(testPlaces(), nil)
	assert.Equal(t, []int{1, 3}, h.Recommend("nuevo", []string{"FAST FOOD"}, 5))
	assert.Equal(t, []int{1, 3}, h.Recommend("nuevo", []string{"Spicy"}, 5))
}

func TestHybridStagePrecedence(t *testing.T) {
	places := []Place{
		{ID: 1, Name: "Hot N Spicy", Type: "Fast Food", Tags: "zinger,spicy"},
		{ID: 2, Name: "Raju Campus Hotel", Type: "Cafe", Tags: "tea,chai"},
		{ID: 3, Name: "Ayan Gardens", Type: "Restaurant", Tags: "juices,shakes"},
		{ID: 4, Name: "Asrar Bucks", Type: "Cafe", Tags: "coffee,shakes"},
	}
	ratings := []Rating{
		{UserID: "u1", PlaceID: 1, Rating: 5},
		{UserID: "u2", PlaceID: 1, Rating: 4},
		{UserID: "u2", PlaceID: 3, Rating: 5},
	}
	h := NewHybridRecommender(places, ratings)

	got := h.Recommend("u1", []string{"cafe"}, 4)

	// etapa 1: colaborativo aporta el 3; etapa 2: cafés (2 y 4) en orden
	// de catálogo; etapa 3: populares no repetidos (el 1 está valorado
	// por u1 pero la popularidad no filtra por usuario)
	require.Equal(t, []int{3, 2, 4, 1}, got)
}

func TestHybridNoDuplicatesAndLimit(t *testing.T) {
	places := testPlaces()
	ratings := testRatings()
	h := NewHybridRecommender(places, ratings)

	for _, limit := range []int{1, 2, 3, 5, 10} {
		got := h.Recommend("u1", []string{"fast", "cafe", "spicy"}, limit)
		assert.LessOrEqual(t, len(got), limit)

		seen := make(map[int]bool)
		for _, id := range got {
			assert.False(t, seen[id], "id %d duplicado en %v", id, got)
			seen[id] = true
		}
	}
}

func TestHybridPopularityFallback(t *testing.T) {
	// sin preferencias ni historial: manda la popularidad
	ratings := []Rating{
		{UserID: "a", PlaceID: 2, Rating: 3},
		{UserID: "b", PlaceID: 2, Rating: 4},
		{UserID: "c", PlaceID: 1, Rating: 5},
		{UserID: "d", PlaceID: 3, Rating: 2},
		{UserID: "e", PlaceID: 3, Rating: 4},
	}
	h := NewHybridRecommender(testPlaces(), ratings)

	got := h.Recommend("nuevo", nil, 3)
	// 2 y 3 tienen dos ratings cada uno: empata y gana el que apareció
	// primero en el catálogo de ratings
	require.Equal(t, []int{2, 3, 1}, got)
}

func TestHybridPopularityStable(t *testing.T) {
	ratings := testRatings()
	h := NewHybridRecommender(testPlaces(), ratings)
	first := h.PopularPlaces(0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, NewHybridRecommender(testPlaces(), ratings).PopularPlaces(0))
	}
}

func TestHybridAllEmpty(t *testing.T) {
	h := NewHybridRecommender(nil, nil)
	assert.Empty(t, h.Recommend("u1", nil, 5))
	assert.Empty(t, h.Recommend("", []string{"cafe"}, 5))
	assert.Empty(t, h.PopularPlaces(3))
}

func TestHybridDefaultLimit(t *testing.T) {
	places := []Place{
		{ID: 1, Type: "Cafe"}, {ID: 2, Type: "Cafe"}, {ID: 3, Type: "Cafe"},
		{ID: 4, Type: "Cafe"}, {ID: 5, Type: "Cafe"}, {ID: 6, Type: "Cafe"},
	}
	h := NewHybridRecommender(places, nil)
	assert.Len(t, h.Recommend("nuevo", []string{"cafe"}, 0), DefaultHybridLimit)
}
