// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/gentlelibrary/internal/app/resources"
	"github.com/dalemusser/gentlelibrary/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the catalog is
// loaded, but before the HTTP handler is built: it registers the shared
// layout templates and sets the site identity used by every page.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(viewdata.Site{
		Name:    appCfg.SiteName,
		Tagline: appCfg.SiteTagline,
	})
	return nil
}
