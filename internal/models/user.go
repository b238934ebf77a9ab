package models

type UserDoc struct {
	ID            string   `json:"id" bson:"_id"`
	Email         string   `json:"email" bson:"email"`
	Name          string   `json:"name" bson:"name"`
	PasswordHash  string   `json:"passwordHash" bson:"passwordHash"`
	Role          string   `json:"role" bson:"role"` // "student" | "admin"
	University    string   `json:"university,omitempty" bson:"university,omitempty"`
	PreferredTags []string `json:"preferredTags,omitempty" bson:"preferredTags,omitempty"`
	TotalReviews  int      `json:"totalReviews" bson:"totalReviews"`
	CreatedAt     string   `json:"createdAt" bson:"createdAt"`
	UpdatedAt     string   `json:"updatedAt" bson:"updatedAt"`
}
