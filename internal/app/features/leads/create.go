// internal/app/features/leads/create.go
package leads

import (
	"net/http"

	leadstore "github.com/dalemusser/leadsadmin/internal/app/store/leads"
	"github.com/dalemusser/leadsadmin/internal/app/system/jsonio"
	"github.com/dalemusser/leadsadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleCreate validates the JSON body and stores a new lead.
//
// Route: POST /api/leads
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in leadstore.Input
	if err := jsonio.Decode(w, r, &in); err != nil {
		jsonio.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create lead")
	defer cancel()

	lead, err := h.Leads.Create(ctx, in)
	if err != nil {
		h.writeStoreError(w, err, "create lead", "")
		return
	}

	h.Log.Info("lead created",
		zap.String("lead_id", lead.ID.Hex()),
		zap.String("category", lead.Category))
	jsonio.Write(w, http.StatusCreated, lead)
}
