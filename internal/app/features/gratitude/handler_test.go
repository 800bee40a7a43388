package gratitude_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gratitudefeature "github.com/supplyaid/supplyaid-server/internal/app/features/gratitude"
	"github.com/supplyaid/supplyaid-server/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*gratitudefeature.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return gratitudefeature.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestCreate(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"name":"Grateful","location":"Riverside","message":"Thank you",` +
		`"projectName":"Winter Aid","image":"g.png"}`
	req := httptest.NewRequest("POST", "/api/v1/gratitude", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !resp.Success || resp.Message != "Gratitude connection created successfully" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestList(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateGratitudeEntry(ctx, "One", "First thanks")
	fixtures.CreateGratitudeEntry(ctx, "Two", "Second thanks")

	req := httptest.NewRequest("GET", "/api/v1/gratitude", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Success          bool `json:"success"`
		GratitudeEntries []struct {
			Name      string `json:"name"`
			CreatedAt string `json:"createdAt"`
		} `json:"gratitudeEntries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !resp.Success || len(resp.GratitudeEntries) != 2 {
		t.Errorf("unexpected response: %s", rec.Body.String())
	}
	if resp.GratitudeEntries[0].CreatedAt == "" {
		t.Error("expected createdAt to be present on entries")
	}
}
