// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	browsefeature "github.com/dalemusser/gentlelibrary/internal/app/features/browse"
	errorsfeature "github.com/dalemusser/gentlelibrary/internal/app/features/errors"
	healthfeature "github.com/dalemusser/gentlelibrary/internal/app/features/health"
	"github.com/dalemusser/gentlelibrary/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, catalog loading, and the Startup
// hook have completed. It boots the template engine and mounts:
//   - /health          catalog status for load balancers
//   - /static/*        stylesheet and other assets from ./public
//   - /api/resources   JSON view of the filtered catalog, rate limited per IP
//   - /                the catalog page
//
// Anything else gets the not-found page.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Catalog, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Catalog page and JSON API share one handler
	browseHandler := browsefeature.NewHandler(deps.Catalog, cardOptions(appCfg), logger)
	apiLimit := ratelimit.Middleware(apiLimiter(appCfg), logger)
	r.Mount("/api/resources", browsefeature.APIRoutes(browseHandler, apiLimit))
	r.Mount("/", browsefeature.Routes(browseHandler))

	return r, nil
}
