package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlaces() []Place {
	return []Place{
		{ID: 1, Name: "Zinger Hut", Type: "Fast Food", Tags: "spicy,burger", Description: ""},
		{ID: 2, Name: "Zen Cafe", Type: "Cafe", Tags: "coffee,chill", Description: ""},
		{ID: 3, Name: "Zinger Zone", Type: "Fast Food", Tags: "spicy,chicken", Description: ""},
	}
}

func TestContentRecommendRanking(t *testing.T) {
	c := NewContentRecommender(testPlaces())

	// Zinger Zone comparte "zinger fast food spicy" con Zinger Hut;
	// Zen Cafe no comparte nada
	got := c.Recommend(1, 2)
	require.Equal(t, []int{3, 2}, got)
}

func TestContentRecommendExcludesSelf(t *testing.T) {
	c := NewContentRecommender(testPlaces())
	for _, p := range testPlaces() {
		got := c.Recommend(p.ID, 10)
		assert.NotContains(t, got, p.ID, "recommend(%d) no debería incluirse a sí mismo", p.ID)
	}
}

func TestContentSimilarityMatrixSymmetric(t *testing.T) {
	places := testPlaces()
	c := NewContentRecommender(places)
	for _, a := range places {
		for _, b := range places {
			assert.InDelta(t, c.Similarity(a.ID, b.ID), c.Similarity(b.ID, a.ID), 1e-12)
		}
	}
	assert.InDelta(t, 1.0, c.Similarity(1, 1), 1e-12)
}

func TestContentRecommendEmptyAndUnknown(t *testing.T) {
	empty := NewContentRecommender(nil)
	assert.Empty(t, empty.Recommend(1, 3))

	c := NewContentRecommender(testPlaces())
	assert.Empty(t, c.Recommend(999, 3))
}

func TestContentRecommendDefaultLimit(t *testing.T) {
	places := []Place{
		{ID: 1, Name: "Chai Dhaba", Tags: "tea,chai"},
		{ID: 2, Name: "Chai Corner", Tags: "tea,chai"},
		{ID: 3, Name: "Chai Stop", Tags: "tea,chai"},
		{ID: 4, Name: "Chai House", Tags: "tea,chai"},
		{ID: 5, Name: "Chai Point", Tags: "tea,chai"},
	}
	c := NewContentRecommender(places)
	assert.Len(t, c.Recommend(1, 0), DefaultLimit)
}

func TestContentMissingOptionalFields(t *testing.T) {
	places := []Place{
		{ID: 1, Name: "Solo Nombre"},
		{ID: 2, Name: "Solo Nombre Dos"},
	}
	// campos opcionales vacíos no deben romper la vectorización
	c := NewContentRecommender(places)
	got := c.Recommend(1, 3)
	require.Equal(t, []int{2}, got)
}

func TestContentTiesAreDeterministic(t *testing.T) {
	// los lugares 2 y 3 son igual de (poco) parecidos al 1: empate,
	// gana el orden del catálogo
	places := []Place{
		{ID: 1, Name: "Karahi King", Tags: "karahi,bbq"},
		{ID: 2, Name: "Juice Bar", Tags: "juices,shakes"},
		{ID: 3, Name: "Smoothie Bar", Tags: "smoothies,fruit"},
	}
	c := NewContentRecommender(places)
	first := c.Recommend(1, 2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Recommend(1, 2))
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"minúsculas y separadores", "Roll-Paratha, ZINGER!", []string{"roll", "paratha", "zinger"}},
		{"stopwords fuera", "the best chai on campus", []string{"best", "chai", "campus"}},
		{"tokens de un caracter fuera", "a b chai", []string{"chai"}},
		{"vacío", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
