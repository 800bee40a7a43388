// internal/domain/models/donation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation records a single monetary contribution. Donations are immutable
// once inserted.
//
// UserID holds the hex form of the donor's users._id. It is a logical
// reference only; the all-donors report resolves it with a $lookup and drops
// donations whose user no longer exists.
type Donation struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category string             `bson:"category" json:"category"`
	UserID   string             `bson:"user_id" json:"userId"`
	Amount   float64            `bson:"amount" json:"amount"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
