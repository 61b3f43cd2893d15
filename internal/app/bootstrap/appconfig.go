// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where the catalog's own settings live: where the generated
// data file is, how the site introduces itself, and how cards are drawn.
type AppConfig struct {
	// Generated catalog file written by cmd/builddata
	DataPath string

	// Site identity shown in the page header
	SiteName    string
	SiteTagline string

	// Card rendering
	IconServiceURL string // fmt pattern with one %s for the domain; blank disables favicons
	DetailTagLimit int    // need tags shown on an expanded card before "+N more"

	// JSON API
	APIRateLimit int // requests per minute per client IP; 0 disables limiting
}
