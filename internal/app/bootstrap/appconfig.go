// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (LEADSADMIN_*), configuration
// files, or command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig
// covers ports, TLS, logging and the other framework-level settings.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string; required
	MongoDatabase string // Database name within MongoDB

	// PIN gate
	AuthPIN        string        // Plain PIN or bcrypt hash; required, never the demo value
	AuthRateLimit  int           // Max PIN checks per client per window; 0 disables limiting
	AuthRateWindow time.Duration // Window for AuthRateLimit
	AuthTrustProxy bool          // Key the limiter by the proxy-reported client address

	// Origins allowed to call /api from a browser; empty disables CORS
	CORSAllowedOrigins []string

	// Store call deadlines
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}
