// Package volunteers serves the volunteer application workflow: submission,
// listing, approval, and removal.
package volunteers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	volunteerstore "github.com/supplyaid/supplyaid-server/internal/app/store/volunteers"
	"github.com/supplyaid/supplyaid-server/internal/app/system/httpjson"
	"github.com/supplyaid/supplyaid-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the volunteer endpoints.
type Handler struct {
	Volunteers *volunteerstore.Store
	Log        *zap.Logger
}

// NewHandler constructs a volunteers Handler over the applications collection.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Volunteers: volunteerstore.New(db),
		Log:        logger,
	}
}

type applyRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	FacebookID   string `json:"facebookId"`
	VolunteerFor string `json:"volunteerFor"`
}

// Apply handles POST /volunteer-application. One application per email; the
// store forces isApproved to false regardless of the request body.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	exists, err := h.Volunteers.EmailExists(r.Context(), req.Email)
	if err != nil {
		h.Log.Error("volunteer apply: email lookup failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if exists {
		httpjson.Fail(w, http.StatusBadRequest, "Volunteer application already exists for this email")
		return
	}

	_, err = h.Volunteers.Create(r.Context(), models.VolunteerApplication{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		FacebookID:   req.FacebookID,
		VolunteerFor: req.VolunteerFor,
	})
	if err == volunteerstore.ErrDuplicateEmail {
		httpjson.Fail(w, http.StatusBadRequest, "Volunteer application already exists for this email")
		return
	}
	if err != nil {
		h.Log.Error("volunteer apply: insert failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusCreated, "Volunteer application submitted successfully", nil)
}

// List handles GET /volunteer-applications.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Volunteers.List(r.Context())
	if err != nil {
		h.Log.Error("volunteer list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.OK(w, http.StatusOK, "", map[string]any{"volunteerApplications": apps})
}

// ListApproved handles GET /volunteer-applications/approved.
func (h *Handler) ListApproved(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Volunteers.ListApproved(r.Context())
	if err != nil {
		h.Log.Error("approved volunteer list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.OK(w, http.StatusOK, "", map[string]any{"approvedVolunteerApplications": apps})
}

// Approve handles PUT /volunteer-applications/approve/{id}. Approving an
// already-approved application succeeds again.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid volunteer application ID")
		return
	}

	err = h.Volunteers.Approve(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Volunteer application not found")
		return
	}
	if err != nil {
		h.Log.Error("volunteer approve failed", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusOK, "Volunteer application approved successfully", nil)
}

// Delete handles DELETE /volunteer-applications/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "Invalid volunteer application ID")
		return
	}

	err = h.Volunteers.Delete(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Volunteer application not found")
		return
	}
	if err != nil {
		h.Log.Error("volunteer delete failed", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusOK, "Volunteer application deleted successfully", nil)
}
