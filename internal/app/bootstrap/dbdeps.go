// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"gorm.io/gorm"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	DB *gorm.DB
}
