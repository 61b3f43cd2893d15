// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown tears down back-end resources. The catalog is an in-memory
// value with nothing to close.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Catalog != nil {
		logger.Info("releasing catalog", zap.Int("resources", deps.Catalog.Len()))
	}
	return nil
}
