// internal/app/features/leads/routes.go
package leads

import "github.com/go-chi/chi/v5"

// Routes mounts the lead API under the base path
// (typically "/api/leads" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)

	// Registered before /{id} so "export" is never parsed as an identifier.
	r.Get("/export", h.ServeExport)

	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
