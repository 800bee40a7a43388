// Package status serves the root probe that existing frontends poll.
package status

import (
	"net/http"
	"time"

	"github.com/supplyaid/supplyaid-server/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// Handler holds dependencies for the root status probe.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs a status Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// Serve handles GET /. The shape is fixed: a message and the current time.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	httpjson.Raw(w, http.StatusOK, map[string]any{
		"message":   "Server is running smoothly",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}
