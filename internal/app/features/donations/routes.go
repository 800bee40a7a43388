// internal/app/features/donations/routes.go
package donations

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the donation endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/total", h.Total)
	r.Get("/category/{category}", h.TotalByCategory)
	r.Get("/user/{userId}", h.TotalByUser)
	r.Get("/donation-data/user/{userId}", h.BreakdownByUser)
	r.Get("/all-donors", h.AllDonors)
	return r
}
