// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings like HTTP ports, TLS, logging level, and request
// limits; AppConfig is everything specific to this application.
type AppConfig struct {
	// DatabasePath is the SQLite database file. The file is created on
	// first run if it does not exist.
	DatabasePath string

	// OpenBrowser opens the registration form in the local browser after
	// startup. Meant for desktop use; leave off in containers.
	OpenBrowser bool

	// BaseURL is the externally visible base URL, used when opening the
	// browser.
	BaseURL string

	// Flash-message cookie configuration.
	SessionKey  string // signing key; a random one is generated when blank
	SessionName string // cookie name
}
