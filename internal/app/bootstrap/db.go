// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	resourcestore "github.com/dalemusser/gentlelibrary/internal/app/store/resources"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB loads the generated catalog file.
//
// A missing file is not an error: the app starts and shows onboarding
// instructions. A file that exists but cannot be decoded or validated
// aborts startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	cat, err := resourcestore.Load(appCfg.DataPath)
	if errors.Is(err, resourcestore.ErrNoData) {
		logger.Warn("catalog data file not found; serving onboarding page",
			zap.String("data_path", appCfg.DataPath))
		return DBDeps{}, nil
	}
	if err != nil {
		logger.Error("catalog load failed", zap.String("data_path", appCfg.DataPath), zap.Error(err))
		return DBDeps{}, fmt.Errorf("load catalog %s: %w", appCfg.DataPath, err)
	}

	logger.Info("catalog loaded",
		zap.String("data_path", appCfg.DataPath),
		zap.Int("resources", cat.Len()),
		zap.String("build_id", cat.BuildID()))
	return DBDeps{Catalog: cat}, nil
}

// EnsureSchema has nothing to set up: the catalog is a read-only file
// validated when it is loaded.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
