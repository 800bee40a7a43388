package gratitudestore

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
	return &Store{c: db.Collection("gratitude_entries")}
}

// Create inserts a gratitude entry, stamping CreatedAt at insert time.
func (s *Store) Create(ctx context.Context, g models.GratitudeEntry) (models.GratitudeEntry, error) {
	g.ID = primitive.NewObjectID()
	g.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.GratitudeEntry{}, err
	}
	return g, nil
}

// List returns every gratitude entry.
func (s *Store) List(ctx context.Context) ([]models.GratitudeEntry, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.GratitudeEntry{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
