// internal/app/features/dashboard/routes.go
package dashboard

import "github.com/go-chi/chi/v5"

// Routes serves the login page at "/" and the admin page at "/dashboard";
// bootstrap mounts it at the root.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLogin)
	r.Get("/dashboard", h.ServeAdmin)
	return r
}
