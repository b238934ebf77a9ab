package recommend

import (
	"sort"
	"strings"
)

// HybridRecommender compone, en orden estricto de precedencia:
//  1. colaborativo (historial del usuario)
//  2. cold start por preferencias (match textual sobre type/tags)
//  3. fallback por popularidad (cantidad cruda de ratings)
//
// Los resultados se acumulan sin duplicados hasta llegar a limit y nunca
// se reordenan entre etapas.
type HybridRecommender struct {
	collab UserRecommender
	places []Place
	// popularItems: IDs ordenados por cantidad de ratings desc; empates
	// por orden de primera aparición en el catálogo de ratings
	popularItems []int
}

// NewHybridRecommender construye ambos engines y precalcula el ranking de
// popularidad desde el snapshot de ratings.
func NewHybridRecommender(places []Place, ratings []Rating) *HybridRecommender {
	h := &HybridRecommender{
		collab: NewCollaborativeRecommender(ratings),
		places: places,
	}

	counts := make(map[int]int)
	var order []int
	for _, r := range ratings {
		if counts[r.PlaceID] == 0 {
			order = append(order, r.PlaceID)
		}
		counts[r.PlaceID]++
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})
	h.popularItems = order

	return h
}

// Recommend arma la recomendación híbrida para un usuario. prefs es la
// señal de cold start (keywords de tipo/tags, puede ser nil).
func (h *HybridRecommender) Recommend(userID string, prefs []string, limit int) []int {
	if limit <= 0 {
		limit = DefaultHybridLimit
	}

	recs := make([]int, 0, limit)
	seen := make(map[int]bool)
	push := func(placeID int) {
		if !seen[placeID] {
			seen[placeID] = true
			recs = append(recs, placeID)
		}
	}

	// 1) colaborativo
	for _, id := range h.collab.RecommendForUser(userID, limit) {
		push(id)
	}

	// 2) cold start por preferencias, en orden de catálogo
	if len(recs) < limit && len(prefs) > 0 {
		for _, p := range h.places {
			if matchesPreferences(p, prefs) {
				push(p.ID)
			}
		}
	}

	// 3) populares
	if len(recs) < limit {
		for _, id := range h.popularItems {
			if len(recs) >= limit {
				break
			}
			push(id)
		}
	}

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// PopularPlaces devuelve el ranking de popularidad precalculado
// (truncado a limit). Lo usa el home para la sección "trending".
func (h *HybridRecommender) PopularPlaces(limit int) []int {
	if limit <= 0 || limit > len(h.popularItems) {
		limit = len(h.popularItems)
	}
	out := make([]int, limit)
	copy(out, h.popularItems[:limit])
	return out
}

// matchesPreferences: substring case-insensitive de cualquier keyword
// sobre el type o los tags del lugar.
func matchesPreferences(p Place, prefs []string) bool {
	typ := strings.ToLower(p.Type)
	tags := strings.ToLower(p.Tags)
	for _, pref := range prefs {
		k := strings.ToLower(strings.TrimSpace(pref))
		if k == "" {
			continue
		}
		if strings.Contains(typ, k) || strings.Contains(tags, k) {
			return true
		}
	}
	return false
}
