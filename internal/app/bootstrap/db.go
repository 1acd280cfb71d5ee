// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jcollier/memberportal/internal/domain/models"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDB opens the SQLite database file, creating it on first run.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	db, err := gorm.Open(sqlite.Open(appCfg.DatabasePath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return DBDeps{}, fmt.Errorf("open sqlite database %q: %w", appCfg.DatabasePath, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return DBDeps{}, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return DBDeps{}, fmt.Errorf("ping sqlite database %q: %w", appCfg.DatabasePath, err)
	}

	logger.Info("connected to sqlite database", zap.String("path", appCfg.DatabasePath))
	return DBDeps{DB: db}, nil
}

// EnsureSchema migrates the members table and its unique indexes on email
// and mobile. AutoMigrate is idempotent, so restarting against an existing
// database file is safe.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := deps.DB.WithContext(ctx).AutoMigrate(&models.Member{}); err != nil {
		return fmt.Errorf("migrate members schema: %w", err)
	}
	logger.Info("members schema ensured")
	return nil
}
