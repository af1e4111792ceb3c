// internal/app/features/leads/update.go
package leads

import (
	"net/http"

	leadstore "github.com/dalemusser/leadsadmin/internal/app/store/leads"
	"github.com/dalemusser/leadsadmin/internal/app/system/jsonio"
	"github.com/dalemusser/leadsadmin/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleUpdate applies a partial update. Fields absent from the body keep
// their stored values.
//
// Route: PUT /api/leads/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	id, err := leadstore.ParseID(idHex)
	if err != nil {
		h.writeStoreError(w, err, "update lead", idHex)
		return
	}

	var p leadstore.Patch
	if err := jsonio.Decode(w, r, &p); err != nil {
		jsonio.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update lead")
	defer cancel()

	lead, err := h.Leads.Update(ctx, id, p)
	if err != nil {
		h.writeStoreError(w, err, "update lead", idHex)
		return
	}
	jsonio.Write(w, http.StatusOK, lead)
}
