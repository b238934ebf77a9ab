package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// ContentRecommender: filtrado por contenido. Arma un "soup" textual por
// lugar (name + type + tags + description), lo vectoriza con TF-IDF y
// precalcula la matriz completa de similitud coseno.
type ContentRecommender struct {
	places  []Place
	idToIdx map[int]int
	// cosineSim[i][j] = similitud entre el lugar i y el j (simétrica, diag=1)
	cosineSim [][]float64
}

// NewContentRecommender construye el engine desde un snapshot ordenado de
// lugares. Campos vacíos aportan string vacío, nunca fallan.
func NewContentRecommender(places []Place) *ContentRecommender {
	c := &ContentRecommender{
		places:  places,
		idToIdx: make(map[int]int, len(places)),
	}
	for i, p := range places {
		c.idToIdx[p.ID] = i
	}
	if len(places) > 0 {
		c.prepareVectors()
	}
	return c
}

// ====== Vectorización TF-IDF ======

func (c *ContentRecommender) prepareVectors() {
	n := len(c.places)

	// TF por documento + DF global
	tfList := make([]map[string]float64, n)
	df := make(map[string]int)

	for i, p := range c.places {
		soup := p.Name + " " + p.Type + " " + strings.ReplaceAll(p.Tags, ",", " ") + " " + p.Description
		terms := tokenize(soup)

		tf := make(map[string]float64, len(terms))
		for _, t := range terms {
			tf[t]++
		}
		tfList[i] = tf
		for t := range tf {
			df[t]++
		}
	}

	// IDF suavizado: ln((1+n)/(1+df)) + 1, así ningún término del
	// vocabulario pesa cero (si no, términos presentes en todos los
	// documentos dejarían de contar para la similitud).
	idf := make(map[string]float64, len(df))
	for t, d := range df {
		idf[t] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	// vectores TF-IDF normalizados (L2)
	vectors := make([]map[string]float64, n)
	for i, tf := range tfList {
		v := make(map[string]float64, len(tf))
		var norm float64
		for t, f := range tf {
			w := f * idf[t]
			v[t] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for t := range v {
				v[t] /= norm
			}
		}
		vectors[i] = v
	}

	// matriz completa de coseno (vectores ya normalizados => solo producto punto)
	c.cosineSim = make([][]float64, n)
	for i := range c.cosineSim {
		c.cosineSim[i] = make([]float64, n)
		c.cosineSim[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := dotSparse(vectors[i], vectors[j])
			c.cosineSim[i][j] = s
			c.cosineSim[j][i] = s
		}
	}
}

// tokenize: minúsculas, corta en todo lo que no sea letra/dígito,
// descarta stopwords y tokens de un solo caracter (igual que el
// token_pattern por defecto de un vectorizador TF-IDF).
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) < 2 || isStopword(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func dotSparse(a, b map[string]float64) float64 {
	// iterar sobre el más chico
	if len(b) < len(a) {
		a, b = b, a
	}
	var s float64
	for t, wa := range a {
		if wb, ok := b[t]; ok {
			s += wa * wb
		}
	}
	return s
}

// ====== Consulta ======

// Recommend devuelve los IDs de los `limit` lugares más parecidos a
// placeID, excluyéndolo a él mismo. Catálogo vacío o placeID desconocido
// devuelven slice vacío, nunca error. Empates: orden del catálogo.
func (c *ContentRecommender) Recommend(placeID, limit int) []int {
	if limit <= 0 {
		limit = DefaultLimit
	}

	idx, ok := c.idToIdx[placeID]
	if !ok || len(c.places) == 0 {
		return []int{}
	}

	row := c.cosineSim[idx]
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
		out = append(out, c.places[j].ID)
	}
	return out
}

// Similarity expone la entrada (i,j) de la matriz de coseno por ID de
// lugar. Útil para debug y tests; -1 si algún ID no existe.
func (c *ContentRecommender) Similarity(placeA, placeB int) float64 {
	i, okA := c.idToIdx[placeA]
	j, okB := c.idToIdx[placeB]
	if !okA || !okB {
		return -1
	}
	return c.cosineSim[i][j]
}
