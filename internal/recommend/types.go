package recommend

// Paquete recommend: motor de recomendaciones puro (sin Mongo/Redis).
// Los services arman el snapshot y construyen los engines por request.

const (
	// DefaultLimit para content/collaborative
	DefaultLimit = 3
	// DefaultHybridLimit para el recomendador híbrido
	DefaultHybridLimit = 5
)

// Place es el snapshot mínimo de un lugar que necesita el motor.
// Tags viene como string separado por comas (igual que en Mongo).
type Place struct {
	ID          int
	Name        string
	Type        string
	Tags        string
	Description string
}

// Rating es una valoración (user, place, rating 1..5).
// Si un usuario valoró el mismo lugar más de una vez, gana la última
// entrada del slice (last-write-wins).
type Rating struct {
	UserID  string
	PlaceID int
	Rating  int
}

// ====== Interfaces de composición (las usa el híbrido) ======

// ItemRecommender responde "lugares parecidos a X".
type ItemRecommender interface {
	Recommend(placeID, limit int) []int
}

// UserRecommender responde "qué debería probar el usuario U".
type UserRecommender interface {
	RecommendForUser(userID string, limit int) []int
}
