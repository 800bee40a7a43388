package supplystore

import (
	"context"
	"time"

	"github.com/supplyaid/supplyaid-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("supplies")}
}

// Fields is the full mutable field set of a supply. Updates write every
// field unconditionally: a caller that omits a field clears it. That
// overwrite-all behavior is load-bearing for existing clients.
type Fields struct {
	Image       string `json:"image"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Quantity    string `json:"quantity"`
	Description string `json:"description"`
}

// Create inserts a new supply. No field is required; empties persist as-is.
func (s *Store) Create(ctx context.Context, f Fields) (models.Supply, error) {
	now := time.Now()
	sup := models.Supply{
		ID:          primitive.NewObjectID(),
		Image:       f.Image,
		Title:       f.Title,
		Category:    f.Category,
		Quantity:    f.Quantity,
		Description: f.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.c.InsertOne(ctx, sup); err != nil {
		return models.Supply{}, err
	}
	return sup, nil
}

// List returns all supplies. Returns an empty (non-nil) slice when the
// collection is empty so the legacy bare-array route encodes as [].
func (s *Store) List(ctx context.Context) ([]models.Supply, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Supply{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads a supply by ObjectID. Returns mongo.ErrNoDocuments if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Supply, error) {
	var sup models.Supply
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sup); err != nil {
		return nil, err
	}
	return &sup, nil
}

// Update replaces the five mutable fields and returns the post-update
// document. Returns mongo.ErrNoDocuments if no supply matches id.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, f Fields) (*models.Supply, error) {
	set := bson.M{
		"image":       f.Image,
		"title":       f.Title,
		"category":    f.Category,
		"quantity":    f.Quantity,
		"description": f.Description,
		"updated_at":  time.Now(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var sup models.Supply
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&sup)
	if err != nil {
		return nil, err
	}
	return &sup, nil
}

// Delete removes a supply and returns the deleted document.
// Returns mongo.ErrNoDocuments if no supply matches id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (*models.Supply, error) {
	var sup models.Supply
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&sup); err != nil {
		return nil, err
	}
	return &sup, nil
}
