// internal/app/features/reports/handler.go
package reports

import (
	memberstore "github.com/jcollier/memberportal/internal/app/store/members"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler serves machine-readable listings for external reporting tools.
type Handler struct {
	Members *memberstore.Store
	Log     *zap.Logger
}

func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{
		Members: memberstore.New(db),
		Log:     logger,
	}
}
