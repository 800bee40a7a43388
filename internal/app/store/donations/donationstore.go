package donationstore

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
	return &Store{c: db.Collection("donations")}
}

// Create inserts a donation record. The amount has already been validated
// as a finite number by the handler; donations are immutable after insert.
func (s *Store) Create(ctx context.Context, category, userID string, amount float64) (models.Donation, error) {
	d := models.Donation{
		ID:        primitive.NewObjectID(),
		Category:  category,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: time.Now(),
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Donation{}, err
	}
	return d, nil
}

// List returns every donation record.
func (s *Store) List(ctx context.Context) ([]models.Donation, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Donation{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// totalRow decodes the single-group sum stage used by the total queries.
type totalRow struct {
	Total float64 `bson:"total"`
}

// TotalAll sums amount across all donations. An empty collection yields 0,
// not an error.
func (s *Store) TotalAll(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}},
	}
	return s.runTotal(ctx, pipeline)
}

// TotalByCategory sums amount over donations matching the exact category.
// No match yields 0.
func (s *Store) TotalByCategory(ctx context.Context, category string) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"category": category}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}},
	}
	return s.runTotal(ctx, pipeline)
}

func (s *Store) runTotal(ctx context.Context, pipeline []bson.M) (float64, error) {
	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var row totalRow
		if err := cur.Decode(&row); err != nil {
			return 0, err
		}
		return row.Total, nil
	}
	return 0, cur.Err()
}

// TotalByUser fetches the user's donations and sums them in process over the
// filtered set rather than in a server-side pipeline.
func (s *Store) TotalByUser(ctx context.Context, userID string) (float64, error) {
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var total float64
	for cur.Next(ctx) {
		var d models.Donation
		if err := cur.Decode(&d); err != nil {
			return 0, err
		}
		total += d.Amount
	}
	return total, cur.Err()
}
