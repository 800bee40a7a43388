// internal/domain/models/volunteer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VolunteerApplication is a request to volunteer for a project. Applications
// start unapproved; approval is one-way and idempotent.
type VolunteerApplication struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PhoneNumber  string             `bson:"phone_number" json:"phoneNumber"`
	Address      string             `bson:"address" json:"address"`
	FacebookID   string             `bson:"facebook_id" json:"facebookId"`
	VolunteerFor string             `bson:"volunteer_for" json:"volunteerFor"`
	IsApproved   bool               `bson:"is_approved" json:"isApproved"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
