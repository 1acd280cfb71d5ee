// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/jcollier/memberportal/internal/app/features/errors"
	healthfeature "github.com/jcollier/memberportal/internal/app/features/health"
	homefeature "github.com/jcollier/memberportal/internal/app/features/home"
	membersfeature "github.com/jcollier/memberportal/internal/app/features/members"
	registerfeature "github.com/jcollier/memberportal/internal/app/features/register"
	reportsfeature "github.com/jcollier/memberportal/internal/app/features/reports"
	"github.com/jcollier/memberportal/internal/app/system/flash"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It boots the template engine, creates the
// flash-message manager, and mounts the feature routers: home, register,
// members viewer, reports, and health.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Flash messages ride a signed cookie; secure cookies in production.
	secure := coreCfg.Env == "prod"
	flashMgr, err := flash.NewManager(appCfg.SessionKey, appCfg.SessionName, secure, logger)
	if err != nil {
		logger.Error("flash manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.DB, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Landing page
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Registration form
	registerHandler := registerfeature.NewHandler(deps.DB, flashMgr, errLog, logger)
	r.Mount("/register", registerfeature.Routes(registerHandler))

	// Read-only members viewer
	membersHandler := membersfeature.NewHandler(deps.DB, errLog, logger)
	r.Mount("/members", membersfeature.Routes(membersHandler))

	// CSV listing for external reporting tools
	reportsHandler := reportsfeature.NewHandler(deps.DB, logger)
	r.Mount("/reports", reportsfeature.Routes(reportsHandler))

	return r, nil
}
