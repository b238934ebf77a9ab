package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecItem struct {
	PlaceID int     `bson:"placeId" json:"placeId"`
	Score   float64 `bson:"score"  json:"score"`
}

type Recommendation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"userId"        json:"userId"`
	Algo      string    `bson:"algo"          json:"algo"` // "hybrid" | "content" | "item-cf"
	Params    any       `bson:"params"        json:"params"`
	Items     []RecItem `bson:"items"         json:"items"`
	CreatedAt time.Time `bson:"createdAt"     json:"createdAt"`
}
