// Package testimonials serves donor testimonial submission and listing.
package testimonials

import (
	"net/http"

	testimonialstore "github.com/supplyaid/supplyaid-server/internal/app/store/testimonials"
	"github.com/supplyaid/supplyaid-server/internal/app/system/httpjson"
	"github.com/supplyaid/supplyaid-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the testimonial endpoints.
type Handler struct {
	Testimonials *testimonialstore.Store
	Log          *zap.Logger
}

// NewHandler constructs a testimonials Handler over the testimonials collection.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Testimonials: testimonialstore.New(db),
		Log:          logger,
	}
}

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Create handles POST /testimonials.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	_, err := h.Testimonials.Create(r.Context(), models.Testimonial{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		h.Log.Error("testimonial create failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusCreated, "Testimonial created successfully", nil)
}

// List handles GET /testimonials. Legacy shape: a bare array.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Testimonials.List(r.Context())
	if err != nil {
		h.Log.Error("testimonial list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Raw(w, http.StatusOK, items)
}
