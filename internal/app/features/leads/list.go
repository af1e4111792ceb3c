// internal/app/features/leads/list.go
package leads

import (
	"net/http"

	"github.com/dalemusser/leadsadmin/internal/app/system/jsonio"
	"github.com/dalemusser/leadsadmin/internal/app/system/timeouts"
)

// ServeList returns every lead, newest first.
//
// Route: GET /api/leads
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list leads")
	defer cancel()

	leads, err := h.Leads.List(ctx)
	if err != nil {
		h.writeStoreError(w, err, "list leads", "")
		return
	}
	jsonio.Write(w, http.StatusOK, leads)
}
