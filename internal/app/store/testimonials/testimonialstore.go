package testimonialstore

import (
	"context"
	"time"

	"github.com/supplyaid/supplyaid-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("testimonials")}
}

// Create inserts a testimonial. Testimonials are create/read only.
func (s *Store) Create(ctx context.Context, t models.Testimonial) (models.Testimonial, error) {
	t.ID = primitive.NewObjectID()
	t.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Testimonial{}, err
	}
	return t, nil
}

// List returns all testimonials as a non-nil slice so the legacy bare-array
// route encodes an empty collection as [].
func (s *Store) List(ctx context.Context) ([]models.Testimonial, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Testimonial{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
