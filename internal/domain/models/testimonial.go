// internal/domain/models/testimonial.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial is an append-only donor testimonial (create/read only).
type Testimonial struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
