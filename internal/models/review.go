package models

// Lo que está en Mongo. CreatedAt es epoch en milisegundos.
type ReviewDoc struct {
	ReviewID  int    `json:"reviewId" bson:"reviewId"`
	PlaceID   int    `json:"placeId" bson:"placeId"`
	UserID    string `json:"userId" bson:"userId"`
	Rating    int    `json:"rating" bson:"rating"` // 1..5
	Text      string `json:"text,omitempty" bson:"text,omitempty"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}

// Review enriquecida para la API (con el nombre del autor resuelto).
type Review struct {
	ReviewID  int    `json:"reviewId"`
	PlaceID   int    `json:"placeId"`
	UserID    string `json:"userId"`
	UserName  string `json:"user,omitempty"`
	Rating    int    `json:"rating"`
	Text      string `json:"text,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
