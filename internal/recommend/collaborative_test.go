package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRatings() []Rating {
	return []Rating{
		{UserID: "u1", PlaceID: 1, Rating: 5},
		{UserID: "u1", PlaceID: 2, Rating: 1},
		{UserID: "u2", PlaceID: 1, Rating: 4},
		{UserID: "u2", PlaceID: 3, Rating: 5},
	}
}

func TestCollaborativeRecommendForUser(t *testing.T) {
	c := NewCollaborativeRecommender(testRatings())

	got := c.RecommendForUser("u1", 3)

	// nunca lugares ya valorados
	assert.NotContains(t, got, 1)
	assert.NotContains(t, got, 2)
	// el 3 es el único candidato: lo valoró u2, que comparte el lugar 1 con u1
	require.Equal(t, []int{3}, got)
}

func TestCollaborativeScoreWeighting(t *testing.T) {
	c := NewCollaborativeRecommender(testRatings())

	// sim(1,3) = (4*5) / (sqrt(5²+4²) * 5)
	wantSim := 20.0 / (6.4031242374328485 * 5.0)
	assert.InDelta(t, wantSim, c.ItemSimilarity(1, 3), 1e-9)
	// simétrica
	assert.InDelta(t, c.ItemSimilarity(3, 1), c.ItemSimilarity(1, 3), 1e-12)
	// sin co-valoraciones => coseno 0 con relleno-cero
	assert.InDelta(t, 0, c.ItemSimilarity(2, 3), 1e-12)
}

func TestCollaborativeSimilarItems(t *testing.T) {
	c := NewCollaborativeRecommender(testRatings())

	got := c.SimilarItems(1, 2)
	require.Len(t, got, 2)
	assert.NotContains(t, got, 1)
	// el 3 co-valorado con el 1 por u2, el 2 co-valorado por u1;
	// sim(1,2)=5/sqrt(41) > sim(1,3)=4/sqrt(41)
	assert.Equal(t, []int{2, 3}, got)
}

func TestCollaborativeUnknownAndEmpty(t *testing.T) {
	c := NewCollaborativeRecommender(testRatings())
	assert.Empty(t, c.RecommendForUser("nadie", 3))
	assert.Empty(t, c.SimilarItems(999, 3))

	empty := NewCollaborativeRecommender(nil)
	assert.Empty(t, empty.RecommendForUser("u1", 3))
	assert.Empty(t, empty.SimilarItems(1, 3))
}

func TestCollaborativeDuplicateRatingsLastWriteWins(t *testing.T) {
	// u1 valoró dos veces el lugar 1: vale la última (2 estrellas)
	ratings := []Rating{
		{UserID: "u1", PlaceID: 1, Rating: 5},
		{UserID: "u2", PlaceID: 1, Rating: 3},
		{UserID: "u1", PlaceID: 1, Rating: 2},
	}
	c := NewCollaborativeRecommender(ratings)
	assert.Equal(t, 2.0, c.userRatings["u1"][1])
}

func TestCollaborativeDeterministic(t *testing.T) {
	ratings := testRatings()
	first := NewCollaborativeRecommender(ratings).RecommendForUser("u2", 3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, NewCollaborativeRecommender(ratings).RecommendForUser("u2", 3))
	}
}
