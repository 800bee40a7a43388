// Package donations serves donation recording and the aggregation reports.
package donations

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	donationstore "github.com/supplyaid/supplyaid-server/internal/app/store/donations"
	"github.com/supplyaid/supplyaid-server/internal/app/store/queries/donorqueries"
	"github.com/supplyaid/supplyaid-server/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the donation endpoints.
type Handler struct {
	Donations *donationstore.Store
	DB        *mongo.Database
	Log       *zap.Logger
}

// NewHandler constructs a donations Handler. The database handle is kept for
// the cross-collection report queries.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Donations: donationstore.New(db),
		DB:        db,
		Log:       logger,
	}
}

type createRequest struct {
	Category string `json:"category"`
	UserID   string `json:"userId"`
	Amount   any    `json:"amount"`
}

var errInvalidAmount = errors.New("Invalid amount")

// parseAmount accepts the amount as a JSON number or a numeric string and
// rejects anything that does not resolve to a finite float.
func parseAmount(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, errInvalidAmount
		}
		f = parsed
	default:
		return 0, errInvalidAmount
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errInvalidAmount
	}
	return f, nil
}

// Create handles POST /donations.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, err := h.Donations.Create(r.Context(), req.Category, req.UserID, amount); err != nil {
		h.Log.Error("donation create failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusCreated, "Donation created successfully", nil)
}

// List handles GET /donations.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Donations.List(r.Context())
	if err != nil {
		h.Log.Error("donation list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.OK(w, http.StatusOK, "", map[string]any{"donations": items})
}

// Total handles GET /donations/total. Legacy shape: a bare object without the
// success key.
func (h *Handler) Total(w http.ResponseWriter, r *http.Request) {
	total, err := h.Donations.TotalAll(r.Context())
	if err != nil {
		h.Log.Error("donation total failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Raw(w, http.StatusOK, map[string]any{"totalDonation": total})
}

// TotalByCategory handles GET /donations/category/{category}.
func (h *Handler) TotalByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	total, err := h.Donations.TotalByCategory(r.Context(), category)
	if err != nil {
		h.Log.Error("donation category total failed", zap.Error(err), zap.String("category", category))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Raw(w, http.StatusOK, map[string]any{"totalCategoryDonation": total})
}

// TotalByUser handles GET /donations/user/{userId}.
func (h *Handler) TotalByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	total, err := h.Donations.TotalByUser(r.Context(), userID)
	if err != nil {
		h.Log.Error("donation user total failed", zap.Error(err), zap.String("user_id", userID))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Raw(w, http.StatusOK, map[string]any{"totalUserDonation": total})
}

// BreakdownByUser handles GET /donations/donation-data/user/{userId}.
func (h *Handler) BreakdownByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	rows, err := donorqueries.BreakdownByUser(r.Context(), h.DB, userID)
	if err != nil {
		h.Log.Error("donation breakdown failed", zap.Error(err), zap.String("user_id", userID))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.OK(w, http.StatusOK, "", map[string]any{
		"userId":    userID,
		"donations": rows,
	})
}

// AllDonors handles GET /donations/all-donors.
func (h *Handler) AllDonors(w http.ResponseWriter, r *http.Request) {
	donors, err := donorqueries.RankedDonors(r.Context(), h.DB)
	if err != nil {
		h.Log.Error("all-donors report failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.OK(w, http.StatusOK, "", map[string]any{"donors": donors})
}
