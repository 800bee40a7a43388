// Package auth serves registration and login.
package auth

import (
	"net/http"

	userstore "github.com/supplyaid/supplyaid-server/internal/app/store/users"
	credentials "github.com/supplyaid/supplyaid-server/internal/app/system/auth"
	"github.com/supplyaid/supplyaid-server/internal/app/system/httpjson"
	"github.com/supplyaid/supplyaid-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the registration and login endpoints.
type Handler struct {
	Users  *userstore.Store
	Tokens *credentials.TokenIssuer
	Log    *zap.Logger
}

// NewHandler constructs an auth Handler over the users collection.
func NewHandler(db *mongo.Database, tokens *credentials.TokenIssuer, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Tokens: tokens,
		Log:    logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /register.
//
// The existence check runs first so the common duplicate case gets a clean
// conflict response; the unique index on users.email catches the rest.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	exists, err := h.Users.EmailExists(r.Context(), req.Email)
	if err != nil {
		h.Log.Error("register: email lookup failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if exists {
		httpjson.Fail(w, http.StatusBadRequest, "User already exists")
		return
	}

	hash, err := credentials.HashPassword(req.Password)
	if err != nil {
		h.Log.Error("register: password hash failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	_, err = h.Users.Create(r.Context(), models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err == userstore.ErrDuplicateEmail {
		httpjson.Fail(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		h.Log.Error("register: insert failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusCreated, "User registered successfully", nil)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login.
//
// Unknown email and wrong password produce the identical response so the
// two cases cannot be told apart from outside.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	user, err := h.Users.GetByEmail(r.Context(), req.Email)
	if err == mongo.ErrNoDocuments {
		httpjson.Raw(w, http.StatusUnauthorized, map[string]any{"message": "Invalid email or password"})
		return
	}
	if err != nil {
		h.Log.Error("login: user lookup failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !credentials.CheckPassword(user.PasswordHash, req.Password) {
		httpjson.Raw(w, http.StatusUnauthorized, map[string]any{"message": "Invalid email or password"})
		return
	}

	token, err := h.Tokens.Issue(user.Email, user.Name, user.ID.Hex())
	if err != nil {
		h.Log.Error("login: token issue failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusOK, "Login successful", map[string]any{"token": token})
}
