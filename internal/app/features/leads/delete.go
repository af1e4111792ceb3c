// internal/app/features/leads/delete.go
package leads

import (
	"net/http"

	leadstore "github.com/dalemusser/leadsadmin/internal/app/store/leads"
	"github.com/dalemusser/leadsadmin/internal/app/system/jsonio"
	"github.com/dalemusser/leadsadmin/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type messageResponse struct {
	Message string `json:"message"`
}

// HandleDelete removes a lead.
//
// Route: DELETE /api/leads/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	id, err := leadstore.ParseID(idHex)
	if err != nil {
		h.writeStoreError(w, err, "delete lead", idHex)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete lead")
	defer cancel()

	if err := h.Leads.Delete(ctx, id); err != nil {
		h.writeStoreError(w, err, "delete lead", idHex)
		return
	}

	h.Log.Info("lead deleted", zap.String("lead_id", idHex))
	jsonio.Write(w, http.StatusOK, messageResponse{Message: "Lead deleted successfully"})
}
