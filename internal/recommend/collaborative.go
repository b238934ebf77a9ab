package recommend

import (
	"math"
	"sort"
)

// CollaborativeRecommender: filtrado colaborativo item-based sobre la
// matriz usuario×lugar. Las celdas ausentes se rellenan con 0 para el
// coseno ("sin opinión" pesa igual que un rating 0).
type CollaborativeRecommender struct {
	// userRatings[userID][placeID] = rating (last-write-wins ante duplicados)
	userRatings map[string]map[int]float64
	// placeOrder: lugares en orden de primera aparición en el catálogo de
	// ratings; define el desempate determinístico
	placeOrder []int
	placeIdx   map[int]int
	// itemSim[i][j] = coseno entre columnas i y j (índices de placeOrder)
	itemSim [][]float64
}

// NewCollaborativeRecommender construye la matriz y la similitud
// item-item desde un snapshot ordenado de ratings.
func NewCollaborativeRecommender(ratings []Rating) *CollaborativeRecommender {
	c := &CollaborativeRecommender{
		userRatings: make(map[string]map[int]float64),
		placeIdx:    make(map[int]int),
	}

	for _, r := range ratings {
		if _, ok := c.placeIdx[r.PlaceID]; !ok {
			c.placeIdx[r.PlaceID] = len(c.placeOrder)
			c.placeOrder = append(c.placeOrder, r.PlaceID)
		}
		m := c.userRatings[r.UserID]
		if m == nil {
			m = make(map[int]float64)
			c.userRatings[r.UserID] = m
		}
		// si el usuario ya había valorado este lugar, pisa el valor anterior
		m[r.PlaceID] = float64(r.Rating)
	}

	if len(c.placeOrder) > 0 {
		c.prepareItemSimilarity()
	}
	return c
}

// ====== Similitud item-item (coseno sobre columnas) ======

func (c *CollaborativeRecommender) prepareItemSimilarity() {
	n := len(c.placeOrder)

	// productos punto y normas acumulados por pares de columnas; con
	// relleno-cero solo contribuyen los usuarios que valoraron ambos
	dot := make([][]float64, n)
	for i := range dot {
		dot[i] = make([]float64, n)
	}
	norm := make([]float64, n)

	for _, ratings := range c.userRatings {
		for pa, ra := range ratings {
			i := c.placeIdx[pa]
			norm[i] += ra * ra
			for pb, rb := range ratings {
				j := c.placeIdx[pb]
				if j > i {
					dot[i][j] += ra * rb
				}
			}
		}
	}

	c.itemSim = make([][]float64, n)
	for i := range c.itemSim {
		c.itemSim[i] = make([]float64, n)
		c.itemSim[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			den := math.Sqrt(norm[i]) * math.Sqrt(norm[j])
			if den > 0 {
				s := dot[i][j] / den
				c.itemSim[i][j] = s
				c.itemSim[j][i] = s
			}
		}
	}
}

// ====== Consultas ======

// SimilarItems: "a los que les gustó X también les gustó…". placeID sin
// columna en la matriz devuelve vacío.
func (c *CollaborativeRecommender) SimilarItems(placeID, limit int) []int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	idx, ok := c.placeIdx[placeID]
	if !ok {
		return []int{}
	}

	row := c.itemSim[idx]
	order := make([]int, 0, len(row)-1)
	for j := range row {
		if j != idx {
			order = append(order, j)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return row[order[a]] > row[order[b]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	out := make([]int, 0, len(order))
	for _, j := range order {
		out = append(out, c.placeOrder[j])
	}
	return out
}

// RecommendForUser acumula, para cada lugar candidato, la similitud con
// los lugares que el usuario ya valoró, escalada por su rating
// (rating/5: un 5 aporta el peso completo, un 1 aporta un quinto).
// Lugares ya valorados quedan fuera del resultado.
func (c *CollaborativeRecommender) RecommendForUser(userID string, limit int) []int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rated, ok := c.userRatings[userID]
	if !ok || len(rated) == 0 {
		return []int{}
	}

	scores := make(map[int]float64)
	any := false
	for placeID, rating := range rated {
		if rating <= 0 {
			continue
		}
		any = true
		i := c.placeIdx[placeID]
		weight := rating / 5.0
		for j, sim := range c.itemSim[i] {
			scores[c.placeOrder[j]] += sim * weight
		}
	}
	if !any {
		return []int{}
	}

	// sacar lo ya valorado
	for placeID := range rated {
		delete(scores, placeID)
	}

	// candidatos en orden de placeOrder para que el desempate sea estable
	cands := make([]int, 0, len(scores))
	for _, placeID := range c.placeOrder {
		if _, ok := scores[placeID]; ok {
			cands = append(cands, placeID)
		}
	}
	sort.SliceStable(cands, func(a, b int) bool {
		return scores[cands[a]] > scores[cands[b]]
	})

	if len(cands) > limit {
		cands = cands[:limit]
	}
	return cands
}

// ItemSimilarity expone sim(i,j) por ID de lugar; -1 si alguno no existe.
func (c *CollaborativeRecommender) ItemSimilarity(placeA, placeB int) float64 {
	i, okA := c.placeIdx[placeA]
	j, okB := c.placeIdx[placeB]
	if !okA || !okB {
		return -1
	}
	return c.itemSim[i][j]
}
