// internal/app/features/errors/errors.go
package errors

import (
	"net/http"
	"strings"

	"github.com/dalemusser/leadsadmin/internal/app/system/jsonio"
	"go.uber.org/zap"
)

// Handler serves the router's fallback responses. API paths get the JSON
// error body every other endpoint uses; page paths get plain text.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

func isAPI(r *http.Request) bool {
	return r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/")
}

// NotFound handles requests no route matched.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Log.Debug("no route", zap.String("method", r.Method), zap.String("path", r.URL.Path))
	if isAPI(r) {
		jsonio.Error(w, http.StatusNotFound, "Not found")
		return
	}
	http.Error(w, "404 page not found", http.StatusNotFound)
}

// MethodNotAllowed handles a matched path with an unsupported method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.Log.Debug("method not allowed", zap.String("method", r.Method), zap.String("path", r.URL.Path))
	if isAPI(r) {
		jsonio.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	http.Error(w, "405 method not allowed", http.StatusMethodNotAllowed)
}
