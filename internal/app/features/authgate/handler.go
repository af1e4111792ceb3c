// internal/app/features/authgate/handler.go
package authgate

import (
	"net/http"

	"github.com/dalemusser/leadsadmin/internal/app/system/jsonio"
	"github.com/dalemusser/leadsadmin/internal/app/system/pinauth"
	"github.com/dalemusser/leadsadmin/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler answers PIN checks. It issues no session; the client keeps its
// own "authenticated" flag.
type Handler struct {
	Gate    *pinauth.Gate
	Limiter *ratelimit.Limiter // nil disables rate limiting
	Log     *zap.Logger
}

func NewHandler(gate *pinauth.Gate, limiter *ratelimit.Limiter, logger *zap.Logger) *Handler {
	return &Handler{Gate: gate, Limiter: limiter, Log: logger}
}

// Routes mounts the auth check (typically at "/api/auth").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	if h.Limiter != nil {
		r.With(h.Limiter.Middleware(h.rejectLimited)).Post("/", h.HandleCheck)
	} else {
		r.Post("/", h.HandleCheck)
	}
	return r
}

type checkRequest struct {
	Pin string `json:"pin"`
}

type checkResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HandleCheck compares the submitted PIN with the configured secret. The
// answer is always 200 or 401: a body that does not decode, or a pin that
// is not a JSON string, fails the check like a wrong PIN.
//
// Route: POST /api/auth
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := jsonio.Decode(w, r, &req); err != nil {
		h.Log.Debug("pin check body rejected", zap.Error(err))
		req.Pin = ""
	}

	if !h.Gate.Check(req.Pin) {
		h.Log.Info("pin check failed", zap.String("ip", ratelimit.ClientIP(r)))
		jsonio.Write(w, http.StatusUnauthorized, checkResponse{Message: "Invalid pin"})
		return
	}
	jsonio.Write(w, http.StatusOK, checkResponse{Success: true, Message: "Authentication successful"})
}

func (h *Handler) rejectLimited(w http.ResponseWriter, r *http.Request) {
	h.Log.Warn("pin check rate limited", zap.String("ip", ratelimit.ClientIP(r)))
	jsonio.Write(w, http.StatusTooManyRequests, checkResponse{Message: "Too many attempts, try again later"})
}
