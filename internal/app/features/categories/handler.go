// internal/app/features/categories/handler.go
package categories

import (
	"errors"
	"net/http"

	categorystore "github.com/dalemusser/leadsadmin/internal/app/store/categories"
	"github.com/dalemusser/leadsadmin/internal/app/system/jsonio"
	"github.com/dalemusser/leadsadmin/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/categories JSON endpoints.
type Handler struct {
	Categories *categorystore.Store
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Categories: categorystore.New(db),
		Log:        logger,
	}
}

// Routes mounts the category API (typically at "/api/categories").
// Categories are append-only: there is no update or delete route.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	return r
}

// ServeList returns all categories sorted by name.
//
// Route: GET /api/categories
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list categories")
	defer cancel()

	cats, err := h.Categories.List(ctx)
	if err != nil {
		h.Log.Error("list categories failed", zap.Error(err))
		jsonio.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	jsonio.Write(w, http.StatusOK, cats)
}

type createRequest struct {
	Name string `json:"name"`
}

// HandleCreate stores a new category name.
//
// Route: POST /api/categories
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := jsonio.Decode(w, r, &req); err != nil {
		jsonio.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create category")
	defer cancel()

	cat, err := h.Categories.Create(ctx, req.Name)
	switch {
	case err == nil:
	case errors.Is(err, categorystore.ErrNameRequired):
		jsonio.Error(w, http.StatusBadRequest, "Category name is required.")
		return
	case errors.Is(err, categorystore.ErrReservedName):
		jsonio.Error(w, http.StatusBadRequest, "Others is reserved and cannot be saved as a category.")
		return
	case errors.Is(err, categorystore.ErrDuplicateCategory):
		jsonio.Error(w, http.StatusBadRequest, "A category with this name already exists.")
		return
	default:
		h.Log.Error("create category failed", zap.Error(err), zap.String("category", req.Name))
		jsonio.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Log.Info("category created", zap.String("category", cat.Name))
	jsonio.Write(w, http.StatusCreated, cat)
}
