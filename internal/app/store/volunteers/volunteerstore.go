package volunteerstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/supplyaid/supplyaid-server/internal/app/system/normalize"
	"github.com/supplyaid/supplyaid-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("volunteer_applications")}
}

// ErrDuplicateEmail is returned when an application already exists for the email.
var ErrDuplicateEmail = errors.New("a volunteer application already exists for this email")

// EmailExists reports whether an application already holds the given email.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

// Create inserts a new application with IsApproved forced to false.
// The unique email index turns a concurrent duplicate into ErrDuplicateEmail.
func (s *Store) Create(ctx context.Context, a models.VolunteerApplication) (models.VolunteerApplication, error) {
	a.ID = primitive.NewObjectID()
	a.Name = normalize.Name(a.Name)
	a.Email = normalize.Email(a.Email)
	a.IsApproved = false
	a.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.VolunteerApplication{}, ErrDuplicateEmail
		}
		return models.VolunteerApplication{}, err
	}
	return a, nil
}

// List returns all applications, approved or not.
func (s *Store) List(ctx context.Context) ([]models.VolunteerApplication, error) {
	return s.find(ctx, bson.M{})
}

// ListApproved returns only approved applications.
func (s *Store) ListApproved(ctx context.Context) ([]models.VolunteerApplication, error) {
	return s.find(ctx, bson.M{"is_approved": true})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.VolunteerApplication, error) {
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.VolunteerApplication{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Approve sets is_approved on the application. Approval is one-way and
// idempotent: approving an already-approved application succeeds silently.
// Returns mongo.ErrNoDocuments if no application matches id.
func (s *Store) Approve(ctx context.Context, id primitive.ObjectID) error {
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_approved": true}},
	).Err()
	return err
}

// Delete removes an application. Returns mongo.ErrNoDocuments if absent.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
}
