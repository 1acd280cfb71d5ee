// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/jcollier/memberportal/internal/app/resources"

	"github.com/dalemusser/waffle/config"
	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It loads
// the shared templates and, when configured, opens the registration form in
// the local browser.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if appCfg.OpenBrowser {
		url := appCfg.BaseURL + "/register"
		logger.Info("opening browser", zap.String("url", url))
		// Failure to open a browser is never fatal (headless hosts).
		if err := browser.OpenURL(url); err != nil {
			logger.Warn("could not open browser", zap.Error(err))
		}
	}

	return nil
}
