package donationstore_test

import (
	"testing"

	donationstore "github.com/supplyaid/supplyaid-server/internal/app/store/donations"
	"github.com/supplyaid/supplyaid-server/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := donationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID().Hex()
	d, err := store.Create(ctx, "Food", userID, 125.50)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if d.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if d.Amount != 125.50 {
		t.Errorf("amount: got %v, want 125.50", d.Amount)
	}
	if d.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_TotalAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := donationstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Empty collection sums to zero, not an error.
	total, err := store.TotalAll(ctx)
	if err != nil {
		t.Fatalf("TotalAll on empty collection failed: %v", err)
	}
	if total != 0 {
		t.Errorf("empty total: got %v, want 0", total)
	}

	userID := primitive.NewObjectID().Hex()
	fixtures.CreateDonation(ctx, "Food", userID, 100)
	fixtures.CreateDonation(ctx, "Shelter", userID, 250.25)

	total, err = store.TotalAll(ctx)
	if err != nil {
		t.Fatalf("TotalAll failed: %v", err)
	}
	if total != 350.25 {
		t.Errorf("total: got %v, want 350.25", total)
	}
}

func TestStore_TotalByCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := donationstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID().Hex()
	fixtures.CreateDonation(ctx, "Food", userID, 100)
	fixtures.CreateDonation(ctx, "Food", userID, 50)
	fixtures.CreateDonation(ctx, "Shelter", userID, 999)

	total, err := store.TotalByCategory(ctx, "Food")
	if err != nil {
		t.Fatalf("TotalByCategory failed: %v", err)
	}
	if total != 150 {
		t.Errorf("Food total: got %v, want 150", total)
	}

	// Category match is exact; no match sums to zero.
	total, err = store.TotalByCategory(ctx, "food")
	if err != nil {
		t.Fatalf("TotalByCategory failed: %v", err)
	}
	if total != 0 {
		t.Errorf("case-mismatched category: got %v, want 0", total)
	}
}

func TestStore_TotalByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := donationstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	donor := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()
	fixtures.CreateDonation(ctx, "Food", donor, 10)
	fixtures.CreateDonation(ctx, "Shelter", donor, 20)
	fixtures.CreateDonation(ctx, "Food", other, 500)

	total, err := store.TotalByUser(ctx, donor)
	if err != nil {
		t.Fatalf("TotalByUser failed: %v", err)
	}
	if total != 30 {
		t.Errorf("user total: got %v, want 30", total)
	}

	total, err = store.TotalByUser(ctx, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("TotalByUser failed: %v", err)
	}
	if total != 0 {
		t.Errorf("unknown user total: got %v, want 0", total)
	}
}
