package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/supplyaid/supplyaid-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a registered user with the given password hash already
// applied. Use an empty hash for tests that never log in.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, passwordHash string) models.User {
	f.t.Helper()

	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateSupply inserts a supply item.
func (f *Fixtures) CreateSupply(ctx context.Context, title, category, quantity string) models.Supply {
	f.t.Helper()

	now := time.Now().UTC()
	sup := models.Supply{
		ID:          primitive.NewObjectID(),
		Image:       "https://example.com/supply.png",
		Title:       title,
		Category:    category,
		Quantity:    quantity,
		Description: "Test supply description",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("supplies").InsertOne(ctx, sup); err != nil {
		f.t.Fatalf("failed to create test supply: %v", err)
	}
	return sup
}

// CreateDonation inserts a donation for the given donor id (hex string).
func (f *Fixtures) CreateDonation(ctx context.Context, category, userID string, amount float64) models.Donation {
	f.t.Helper()

	d := models.Donation{
		ID:        primitive.NewObjectID(),
		Category:  category,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("donations").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test donation: %v", err)
	}
	return d
}

// CreateVolunteerApplication inserts an application with the given approval
// state.
func (f *Fixtures) CreateVolunteerApplication(ctx context.Context, name, email string, approved bool) models.VolunteerApplication {
	f.t.Helper()

	a := models.VolunteerApplication{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PhoneNumber:  "555-0100",
		Address:      "123 Test St",
		FacebookID:   "test.volunteer",
		VolunteerFor: "Flood Relief",
		IsApproved:   approved,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := f.db.Collection("volunteer_applications").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test volunteer application: %v", err)
	}
	return a
}

// CreateGratitudeEntry inserts a gratitude message.
func (f *Fixtures) CreateGratitudeEntry(ctx context.Context, name, message string) models.GratitudeEntry {
	f.t.Helper()

	g := models.GratitudeEntry{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Location:    "Testville",
		Message:     message,
		ProjectName: "Winter Aid",
		Image:       "https://example.com/gratitude.png",
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("gratitude_entries").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to create test gratitude entry: %v", err)
	}
	return g
}

// CreateTestimonial inserts a donor testimonial.
func (f *Fixtures) CreateTestimonial(ctx context.Context, name, description string) models.Testimonial {
	f.t.Helper()

	tm := models.Testimonial{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		Image:       "https://example.com/testimonial.png",
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("testimonials").InsertOne(ctx, tm); err != nil {
		f.t.Fatalf("failed to create test testimonial: %v", err)
	}
	return tm
}
