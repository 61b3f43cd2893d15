// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/gentlelibrary/internal/app/catalog"
	"github.com/dalemusser/gentlelibrary/internal/app/system/ratelimit"
	"github.com/dalemusser/gentlelibrary/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// envPrefix namespaces the app's environment variables.
const envPrefix = "GENTLELIBRARY"

// appConfigKeys defines the configuration keys for Gentle Library.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_path, site_name, etc.
//   - Environment variables: GENTLELIBRARY_DATA_PATH, GENTLELIBRARY_SITE_NAME, etc.
//   - Command-line flags: --data_path, --site_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_path", Default: "data/resources.json", Desc: "Generated catalog file (written by builddata)"},

	// Site identity
	{Name: "site_name", Default: viewdata.DefaultSiteName, Desc: "Site name shown in the page header"},
	{Name: "site_tagline", Default: viewdata.DefaultSiteTagline, Desc: "One-line description under the site name"},

	// Cards
	{Name: "icon_service_url", Default: "https://www.google.com/s2/favicons?domain=%s&sz=128", Desc: "Favicon URL pattern; %s is replaced by the resource domain. Blank disables favicons"},
	{Name: "detail_tag_limit", Default: catalog.DefaultTagLimit, Desc: "Support-need tags shown on an expanded card before '+N more'"},

	// JSON API
	{Name: "api_rate_limit", Default: 120, Desc: "JSON API requests per minute per client IP (0 disables)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, GENTLELIBRARY_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, envPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataPath: appValues.String("data_path"),

		SiteName:    appValues.String("site_name"),
		SiteTagline: appValues.String("site_tagline"),

		IconServiceURL: strings.TrimSpace(appValues.String("icon_service_url")),
		DetailTagLimit: appValues.Int("detail_tag_limit"),

		APIRateLimit: appValues.Int("api_rate_limit"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if strings.TrimSpace(appCfg.DataPath) == "" {
		return fmt.Errorf("data_path must not be empty")
	}

	if appCfg.DetailTagLimit <= 0 {
		return fmt.Errorf("detail_tag_limit must be positive, got %d", appCfg.DetailTagLimit)
	}

	if appCfg.APIRateLimit < 0 {
		return fmt.Errorf("api_rate_limit must not be negative, got %d", appCfg.APIRateLimit)
	}

	if p := appCfg.IconServiceURL; p != "" {
		if strings.Count(p, "%s") != 1 || strings.Count(p, "%") != 1 {
			return fmt.Errorf("icon_service_url must contain exactly one %%s and no other verbs: %q", p)
		}
		if !urlutil.IsValidAbsHTTPURL(fmt.Sprintf(p, "example.com")) {
			logger.Error("invalid icon service URL", zap.String("icon_service_url", p))
			return fmt.Errorf("icon_service_url is not an absolute http(s) URL: %q", p)
		}
	}

	return nil
}

// apiLimiter builds the JSON API rate limiter, or nil when limiting is off.
func apiLimiter(appCfg AppConfig) *ratelimit.Limiter {
	if appCfg.APIRateLimit == 0 {
		return nil
	}
	return ratelimit.New(appCfg.APIRateLimit, time.Minute)
}

// cardOptions derives card rendering options from the app config.
func cardOptions(appCfg AppConfig) catalog.CardOptions {
	return catalog.CardOptions{
		TagLimit:    appCfg.DetailTagLimit,
		IconPattern: appCfg.IconServiceURL,
	}
}
