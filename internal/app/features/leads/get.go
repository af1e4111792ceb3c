// internal/app/features/leads/get.go
package leads

import (
	"net/http"

	leadstore "github.com/dalemusser/leadsadmin/internal/app/store/leads"
	"github.com/dalemusser/leadsadmin/internal/app/system/jsonio"
	"github.com/dalemusser/leadsadmin/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ServeGet returns one lead.
//
// Route: GET /api/leads/{id}
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	id, err := leadstore.ParseID(idHex)
	if err != nil {
		h.writeStoreError(w, err, "get lead", idHex)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get lead")
	defer cancel()

	lead, err := h.Leads.GetByID(ctx, id)
	if err != nil {
		h.writeStoreError(w, err, "get lead", idHex)
		return
	}
	jsonio.Write(w, http.StatusOK, lead)
}
