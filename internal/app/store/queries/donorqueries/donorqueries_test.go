package donorqueries_test

import (
	"testing"

	"github.com/supplyaid/supplyaid-server/internal/app/store/queries/donorqueries"
	"github.com/supplyaid/supplyaid-server/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBreakdownByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	donor := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()
	fixtures.CreateDonation(ctx, "Food", donor, 100)
	fixtures.CreateDonation(ctx, "Food", donor, 25)
	fixtures.CreateDonation(ctx, "Shelter", donor, 60)
	fixtures.CreateDonation(ctx, "Food", other, 999)

	rows, err := donorqueries.BreakdownByUser(ctx, db, donor)
	if err != nil {
		t.Fatalf("BreakdownByUser failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(rows))
	}

	byCategory := map[string]float64{}
	for _, row := range rows {
		byCategory[row.Category] = row.TotalAmount
	}
	if byCategory["Food"] != 125 {
		t.Errorf("Food: got %v, want 125", byCategory["Food"])
	}
	if byCategory["Shelter"] != 60 {
		t.Errorf("Shelter: got %v, want 60", byCategory["Shelter"])
	}
}

func TestBreakdownByUser_NoDonations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rows, err := donorqueries.BreakdownByUser(ctx, db, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("BreakdownByUser failed: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("expected non-nil empty result, got %v", rows)
	}
}

func TestRankedDonors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := fixtures.CreateUser(ctx, "Alice", "alice@example.com", "hash")
	bob := fixtures.CreateUser(ctx, "Bob", "bob@example.com", "hash")

	fixtures.CreateDonation(ctx, "Food", alice.ID.Hex(), 50)
	fixtures.CreateDonation(ctx, "Shelter", alice.ID.Hex(), 50)
	fixtures.CreateDonation(ctx, "Food", bob.ID.Hex(), 300)

	donors, err := donorqueries.RankedDonors(ctx, db)
	if err != nil {
		t.Fatalf("RankedDonors failed: %v", err)
	}
	if len(donors) != 2 {
		t.Fatalf("expected 2 donors, got %d", len(donors))
	}

	// Sorted by total descending.
	if donors[0].Name != "Bob" || donors[0].TotalAmount != 300 {
		t.Errorf("first donor: got %s/%v, want Bob/300", donors[0].Name, donors[0].TotalAmount)
	}
	if donors[1].Name != "Alice" || donors[1].TotalAmount != 100 {
		t.Errorf("second donor: got %s/%v, want Alice/100", donors[1].Name, donors[1].TotalAmount)
	}
	if donors[1].Email != "alice@example.com" {
		t.Errorf("email: got %q, want joined user email", donors[1].Email)
	}
}

func TestRankedDonors_DropsUnresolvedDonors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	known := fixtures.CreateUser(ctx, "Known", "known@example.com", "hash")
	fixtures.CreateDonation(ctx, "Food", known.ID.Hex(), 10)

	// Donation by a deleted user: valid hex, no matching document.
	fixtures.CreateDonation(ctx, "Food", primitive.NewObjectID().Hex(), 1000)
	// Donation with a user id that is not valid hex at all.
	fixtures.CreateDonation(ctx, "Food", "not-an-object-id", 500)

	donors, err := donorqueries.RankedDonors(ctx, db)
	if err != nil {
		t.Fatalf("RankedDonors failed: %v", err)
	}
	if len(donors) != 1 {
		t.Fatalf("expected 1 resolvable donor, got %d", len(donors))
	}
	if donors[0].Name != "Known" {
		t.Errorf("donor: got %q, want %q", donors[0].Name, "Known")
	}
}
