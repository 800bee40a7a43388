// Package supplies serves CRUD for relief-supply items.
package supplies

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	supplystore "github.com/supplyaid/supplyaid-server/internal/app/store/supplies"
	"github.com/supplyaid/supplyaid-server/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the supply endpoints.
type Handler struct {
	Supplies *supplystore.Store
	Log      *zap.Logger
}

// NewHandler constructs a supplies Handler over the supplies collection.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Supplies: supplystore.New(db),
		Log:      logger,
	}
}

// Create handles POST /supplies. Inserts unconditionally; missing fields
// persist as empty strings.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var f supplystore.Fields
	if err := httpjson.Decode(r, &f); err != nil {
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, err := h.Supplies.Create(r.Context(), f); err != nil {
		h.Log.Error("supply create failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusCreated, "Supply created successfully", nil)
}

// List handles GET /supplies. Legacy shape: a bare array, not the envelope.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Supplies.List(r.Context())
	if err != nil {
		h.Log.Error("supply list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Raw(w, http.StatusOK, items)
}

// Get handles GET /supplies/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	sup, err := h.Supplies.GetByID(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Supply not found")
		return
	}
	if err != nil {
		h.Log.Error("supply get failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusOK, "", map[string]any{"supply": sup})
}

// Update handles PUT /supplies/{id}.
//
// The request body is destructured as the full field set: omitted fields
// overwrite stored values with empties. Existing clients depend on this.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	var f supplystore.Fields
	if err := httpjson.Decode(r, &f); err != nil {
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	sup, err := h.Supplies.Update(r.Context(), id, f)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Supply not found")
		return
	}
	if err != nil {
		h.Log.Error("supply update failed", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusOK, "Supply updated successfully", map[string]any{"supply": sup})
}

// Delete handles DELETE /supplies/{id} and returns the removed document.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	sup, err := h.Supplies.Delete(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		httpjson.Fail(w, http.StatusNotFound, "Supply not found")
		return
	}
	if err != nil {
		h.Log.Error("supply delete failed", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusOK, "Supply deleted successfully", map[string]any{"supply": sup})
}
