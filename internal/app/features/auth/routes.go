// internal/app/features/auth/routes.go
package auth

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the auth endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	return r
}
