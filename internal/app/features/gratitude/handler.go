// Package gratitude serves the gratitude message wall.
package gratitude

import (
	"net/http"

	gratitudestore "github.com/supplyaid/supplyaid-server/internal/app/store/gratitude"
	"github.com/supplyaid/supplyaid-server/internal/app/system/httpjson"
	"github.com/supplyaid/supplyaid-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the gratitude endpoints.
type Handler struct {
	Gratitude *gratitudestore.Store
	Log       *zap.Logger
}

// NewHandler constructs a gratitude Handler over the entries collection.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Gratitude: gratitudestore.New(db),
		Log:       logger,
	}
}

type createRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Message     string `json:"message"`
	ProjectName string `json:"projectName"`
	Image       string `json:"image"`
}

// Create handles POST /gratitude. The store stamps the entry time.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	_, err := h.Gratitude.Create(r.Context(), models.GratitudeEntry{
		Name:        req.Name,
		Location:    req.Location,
		Message:     req.Message,
		ProjectName: req.ProjectName,
		Image:       req.Image,
	})
	if err != nil {
		h.Log.Error("gratitude create failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusCreated, "Gratitude connection created successfully", nil)
}

// List handles GET /gratitude. The failure shape on this route carries a
// fixed message with the underlying error in a separate field.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Gratitude.List(r.Context())
	if err != nil {
		h.Log.Error("gratitude list failed", zap.Error(err))
		httpjson.Raw(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Failed to retrieve gratitude entries",
			"error":   err.Error(),
		})
		return
	}
	httpjson.OK(w, http.StatusOK, "", map[string]any{"gratitudeEntries": entries})
}
