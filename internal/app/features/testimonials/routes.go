// internal/app/features/testimonials/routes.go
package testimonials

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the testimonial endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	return r
}
