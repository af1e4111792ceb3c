// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"sync"

	authgatefeature "github.com/dalemusser/leadsadmin/internal/app/features/authgate"
	categoriesfeature "github.com/dalemusser/leadsadmin/internal/app/features/categories"
	dashboardfeature "github.com/dalemusser/leadsadmin/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/leadsadmin/internal/app/features/errors"
	healthfeature "github.com/dalemusser/leadsadmin/internal/app/features/health"
	leadsfeature "github.com/dalemusser/leadsadmin/internal/app/features/leads"
	"github.com/dalemusser/leadsadmin/internal/app/system/pinauth"
	"github.com/dalemusser/leadsadmin/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var (
	limiterMu   sync.Mutex
	authLimiter *ratelimit.Limiter
)

func stopAuthLimiter() {
	limiterMu.Lock()
	defer limiterMu.Unlock()
	if authLimiter != nil {
		authLimiter.Stop()
		authLimiter = nil
	}
}

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, logger), nil
}

// newRouter mounts every feature. It has no template engine dependency so
// tests can exercise the API surface directly.
func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Set before any Mount so subrouters inherit them.
	errorsHandler := errorsfeature.NewHandler(logger)
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Login and admin pages
	dashboardHandler := dashboardfeature.NewHandler(logger)
	r.Mount("/", dashboardfeature.Routes(dashboardHandler))

	// JSON API
	r.Route("/api", func(api chi.Router) {
		if mw := apiCORS(appCfg.CORSAllowedOrigins); mw != nil {
			api.Use(mw)
		}

		// PIN gate
		var limiter *ratelimit.Limiter
		if appCfg.AuthRateLimit > 0 {
			limiter = ratelimit.New(appCfg.AuthRateLimit, appCfg.AuthRateWindow)
			limiter.TrustProxy = appCfg.AuthTrustProxy
			stopAuthLimiter()
			limiterMu.Lock()
			authLimiter = limiter
			limiterMu.Unlock()
		}
		authHandler := authgatefeature.NewHandler(pinauth.New(appCfg.AuthPIN), limiter, logger)
		api.Mount("/auth", authgatefeature.Routes(authHandler))

		leadsHandler := leadsfeature.NewHandler(deps.MongoDatabase, logger)
		api.Mount("/leads", leadsfeature.Routes(leadsHandler))

		categoriesHandler := categoriesfeature.NewHandler(deps.MongoDatabase, logger)
		api.Mount("/categories", categoriesfeature.Routes(categoriesHandler))
	})

	return r
}
