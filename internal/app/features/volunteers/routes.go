// internal/app/features/volunteers/routes.go
package volunteers

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the volunteer endpoints. The
// submission route is mounted separately because its legacy path is singular
// while the rest are plural.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/approved", h.ListApproved)
	r.Put("/approve/{id}", h.Approve)
	r.Delete("/{id}", h.Delete)
	return r
}

// ApplyRoutes returns the subrouter for the singular submission path.
func ApplyRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Apply)
	return r
}
