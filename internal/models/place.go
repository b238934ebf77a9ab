package models

// Tipos de lugar permitidos en el formulario de alta.
var PlaceTypes = []string{
	"Cafeteria",
	"Cafe",
	"Restaurant",
	"Food Truck",
	"Bakery",
	"Fast Food",
	"Desserts",
	"Beverages",
	"Other",
}

type RatingStats struct {
	Average     float64 `json:"average" bson:"average"`
	Count       int     `json:"count" bson:"count"`
	LastRatedAt string  `json:"lastRatedAt,omitempty" bson:"lastRatedAt,omitempty"`
}

type PlaceDoc struct {
	PlaceID     int          `json:"placeId" bson:"placeId"`
	Name        string       `json:"name" bson:"name"`
	Type        string       `json:"type,omitempty" bson:"type,omitempty"`
	Address     string       `json:"address,omitempty" bson:"address,omitempty"`
	Photo       string       `json:"photo,omitempty" bson:"photo,omitempty"`
	Tags        string       `json:"tags,omitempty" bson:"tags,omitempty"` // separado por comas
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	CreatorID   string       `json:"creatorId,omitempty" bson:"creatorId,omitempty"`
	RatingStats *RatingStats `json:"ratingStats,omitempty" bson:"ratingStats,omitempty"`
	CreatedAt   string       `json:"createdAt" bson:"createdAt"`
	UpdatedAt   string       `json:"updatedAt" bson:"updatedAt"`
}

// Payload para crear un lugar (lo que expondremos en la API)
type PlaceCreateRequest struct {
	Name        string `json:"name"` // obligatorio
	Type        string `json:"type,omitempty"`
	Address     string `json:"address,omitempty"`
	Photo       string `json:"photo,omitempty"`
	Tags        string `json:"tags,omitempty"`
	Description string `json:"description,omitempty"`
}

// Payload para actualización parcial de lugar
type PlaceUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Type        *string `json:"type,omitempty"`
	Address     *string `json:"address,omitempty"`
	Photo       *string `json:"photo,omitempty"`
	Tags        *string `json:"tags,omitempty"`
	Description *string `json:"description,omitempty"`
}
