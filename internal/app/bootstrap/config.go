// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/leadsadmin/internal/app/system/pinauth"
	"github.com/dalemusser/leadsadmin/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the leads admin.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, auth_pin, etc.
//   - Environment variables: LEADSADMIN_MONGO_URI, LEADSADMIN_AUTH_PIN, etc.
//   - Command-line flags: --mongo_uri, --auth_pin, etc.
//
// mongo_uri and auth_pin deliberately have no usable default.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI (required)"},
	{Name: "mongo_database", Default: "leads_admin", Desc: "MongoDB database name"},

	// PIN gate
	{Name: "auth_pin", Default: "", Desc: "Admin PIN or bcrypt hash of it (required; see leadsctl hash-pin)"},
	{Name: "auth_rate_limit", Default: 0, Desc: "Max PIN checks per client IP per window (0 disables)"},
	{Name: "auth_rate_window", Default: "1m", Desc: "Rate limit window (e.g., 1m, 15m)"},
	{Name: "auth_trust_proxy", Default: false, Desc: "Rate limit by X-Forwarded-For (only behind one trusted reverse proxy)"},

	// Cross-origin access to /api
	{Name: "cors_allowed_origins", Default: "*", Desc: "Comma-separated origins allowed to call /api (empty disables CORS)"},

	// Store call deadlines
	{Name: "timeout_short", Default: "5s", Desc: "Deadline for single-document reads and deletes"},
	{Name: "timeout_medium", Default: "10s", Desc: "Deadline for lists, writes and exports"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges with precedence:
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LEADSADMIN", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:      strings.TrimSpace(appValues.String("mongo_uri")),
		MongoDatabase: strings.TrimSpace(appValues.String("mongo_database")),

		AuthPIN:        strings.TrimSpace(appValues.String("auth_pin")),
		AuthRateLimit:  appValues.Int("auth_rate_limit"),
		AuthRateWindow: appValues.Duration("auth_rate_window", time.Minute),
		AuthTrustProxy: appValues.Bool("auth_trust_proxy"),

		CORSAllowedOrigins: parseOrigins(appValues.String("cors_allowed_origins")),

		TimeoutShort:  appValues.Duration("timeout_short", timeouts.DefaultShort),
		TimeoutMedium: appValues.Duration("timeout_medium", timeouts.DefaultMedium),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Startup aborts when the database URI or PIN is missing, when the URI is
// malformed, or when the PIN is the well-known demo value. Nothing is
// substituted for a missing secret.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	var problems []string

	if appCfg.MongoURI == "" {
		problems = append(problems, "mongo_uri is required (set LEADSADMIN_MONGO_URI)")
	} else if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		problems = append(problems, fmt.Sprintf("invalid MongoDB URI: %v", err))
	}
	if appCfg.MongoDatabase == "" {
		problems = append(problems, "mongo_database must not be empty")
	}

	if err := pinauth.Validate(appCfg.AuthPIN); err != nil {
		problems = append(problems, fmt.Sprintf("auth_pin: %v (set LEADSADMIN_AUTH_PIN)", err))
	}

	if appCfg.AuthRateLimit < 0 {
		problems = append(problems, "auth_rate_limit must not be negative")
	}
	if appCfg.AuthRateLimit > 0 && appCfg.AuthRateWindow <= 0 {
		problems = append(problems, "auth_rate_window must be positive when auth_rate_limit is set")
	}

	if appCfg.TimeoutShort < 0 || appCfg.TimeoutMedium < 0 {
		problems = append(problems, "timeouts must not be negative")
	}

	if len(problems) > 0 {
		err := errors.New(strings.Join(problems, "; "))
		logger.Error("configuration rejected", zap.Error(err))
		return err
	}
	return nil
}
