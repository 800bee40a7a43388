// internal/app/features/supplies/routes.go
package supplies

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the supply endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}
