// internal/app/features/leads/handler.go
package leads

import (
	"errors"
	"net/http"

	leadstore "github.com/dalemusser/leadsadmin/internal/app/store/leads"
	"github.com/dalemusser/leadsadmin/internal/app/system/jsonio"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/leads JSON endpoints.
type Handler struct {
	Leads *leadstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a leads Handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Leads: leadstore.New(db),
		Log:   logger,
	}
}

// writeStoreError maps a store error onto the response status contract.
// Anything unrecognised is logged and reported as a generic 500.
func (h *Handler) writeStoreError(w http.ResponseWriter, err error, op, leadID string) {
	var ve *leadstore.ValidationError
	switch {
	case errors.As(err, &ve):
		jsonio.Error(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, leadstore.ErrInvalidID):
		jsonio.Error(w, http.StatusBadRequest, "Invalid lead ID format")
	case errors.Is(err, leadstore.ErrNotFound):
		jsonio.Error(w, http.StatusNotFound, "Lead not found")
	default:
		h.Log.Error(op+" failed", zap.Error(err), zap.String("lead_id", leadID))
		jsonio.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
