package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authfeature "github.com/supplyaid/supplyaid-server/internal/app/features/auth"
	credentials "github.com/supplyaid/supplyaid-server/internal/app/system/auth"
	"github.com/supplyaid/supplyaid-server/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*authfeature.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	tokens := credentials.NewTokenIssuer("test-secret", time.Hour)
	return authfeature.NewHandler(db, tokens, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestRegister(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"name":"New Donor","email":"new@example.com","password":"hunter22"}`
	req := httptest.NewRequest("POST", "/api/v1/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

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
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Message != "User registered successfully" {
		t.Errorf("message: got %q", resp.Message)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Existing", "taken@example.com", "hash")

	body := `{"name":"Another","email":"taken@example.com","password":"pw"}`
	req := httptest.NewRequest("POST", "/api/v1/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if resp.Message != "User already exists" {
		t.Errorf("message: got %q", resp.Message)
	}
}

func TestLogin(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, err := credentials.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	fixtures.CreateUser(ctx, "Donor", "donor@example.com", hash)

	body := `{"email":"donor@example.com","password":"correct-horse"}`
	req := httptest.NewRequest("POST", "/api/v1/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !resp.Success || resp.Message != "Login successful" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp.Token == "" {
		t.Fatal("expected a token in the response")
	}

	claims, err := credentials.NewTokenIssuer("test-secret", time.Hour).Verify(resp.Token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.Email != "donor@example.com" {
		t.Errorf("token email: got %q", claims.Email)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, err := credentials.HashPassword("right")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	fixtures.CreateUser(ctx, "Donor", "donor@example.com", hash)

	cases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"donor@example.com","password":"wrong"}`},
		{"unknown email", `{"email":"nobody@example.com","password":"right"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/login", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
			}

			// Legacy shape: a bare message with no success key.
			var resp map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}
			if resp["message"] != "Invalid email or password" {
				t.Errorf("message: got %v", resp["message"])
			}
			if _, ok := resp["success"]; ok {
				t.Error("expected no success key on the 401 response")
			}
		})
	}
}
