// internal/domain/models/supply.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Supply is a relief-supply item shown on the public site.
//
// Quantity is stored as the string the client submitted; the API applies no
// numeric coercion to supply fields.
type Supply struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Image       string             `bson:"image" json:"image"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Quantity    string             `bson:"quantity" json:"quantity"`
	Description string             `bson:"description" json:"description"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
