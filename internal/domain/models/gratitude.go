// internal/domain/models/gratitude.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GratitudeEntry is an append-only thank-you message from an aid recipient.
// CreatedAt is stamped by the store at insert time.
type GratitudeEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Location    string             `bson:"location" json:"location"`
	Message     string             `bson:"message" json:"message"`
	ProjectName string             `bson:"project_name" json:"projectName"`
	Image       string             `bson:"image" json:"image"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
