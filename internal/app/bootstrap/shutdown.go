// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down DB connections and other resources.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.DB != nil {
		logger.Info("closing sqlite database")
		sqlDB, err := deps.DB.DB()
		if err != nil {
			logger.Error("unwrap sql.DB failed", zap.Error(err))
			return err
		}
		if err := sqlDB.Close(); err != nil {
			logger.Error("sqlite close failed", zap.Error(err))
			return err
		}
	}
	return nil
}
