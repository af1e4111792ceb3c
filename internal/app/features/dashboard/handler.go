// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	_ "github.com/dalemusser/leadsadmin/internal/app/features/dashboard/views"
	"github.com/dalemusser/leadsadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the two HTML shells. All data is fetched by the page
// scripts from the JSON API.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type loginData struct {
	Title string
}

type adminData struct {
	Title     string
	Others    string
	Platforms []string
}

// ServeLogin renders the PIN entry page.
//
// Route: GET /
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "leads_login", loginData{Title: "Leads Admin"})
}

// ServeAdmin renders the lead management page. The page redirects to the
// login page itself when the browser has not passed the PIN check.
//
// Route: GET /dashboard
func (h *Handler) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "leads_admin", adminData{
		Title:     "Leads Dashboard",
		Others:    models.OthersCategory,
		Platforms: models.SocialPlatforms,
	})
}
