// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the portal.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: database_path, open_browser, etc.
//   - Environment variables: MEMBERPORTAL_DATABASE_PATH, MEMBERPORTAL_OPEN_BROWSER, etc.
//   - Command-line flags: --database_path, --open_browser, etc.
var appConfigKeys = []config.AppKey{
	{Name: "database_path", Default: "members.db", Desc: "SQLite database file path"},
	{Name: "open_browser", Default: false, Desc: "Open the registration form in a browser after startup"},
	{Name: "base_url", Default: "http://localhost:8085", Desc: "Externally visible base URL"},
	{Name: "session_key", Default: "", Desc: "Flash cookie signing key (random per-process key when blank)"},
	{Name: "session_name", Default: "memberportal-session", Desc: "Flash cookie name"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have access
// to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "MEMBERPORTAL", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DatabasePath: appValues.String("database_path"),
		OpenBrowser:  appValues.Bool("open_browser"),
		BaseURL:      appValues.String("base_url"),
		SessionKey:   appValues.String("session_key"),
		SessionName:  appValues.String("session_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if strings.TrimSpace(appCfg.DatabasePath) == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if strings.TrimSpace(appCfg.SessionName) == "" {
		return fmt.Errorf("session_name must not be empty")
	}
	return nil
}
