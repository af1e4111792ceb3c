// internal/app/features/leads/export.go
package leads

import (
	"net/http"
	"time"

	"github.com/dalemusser/leadsadmin/internal/app/system/leadcsv"
	"github.com/dalemusser/leadsadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeExport streams every lead as a CSV attachment, in list order.
//
// Route: GET /api/leads/export
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "export leads")
	defer cancel()

	leads, err := h.Leads.List(ctx)
	if err != nil {
		h.writeStoreError(w, err, "export leads", "")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+leadcsv.Filename(time.Now()))
	w.WriteHeader(http.StatusOK)
	if err := leadcsv.Write(w, leads); err != nil {
		h.Log.Warn("export leads: write failed", zap.Error(err))
	}
}
