// internal/app/features/members/handler.go
package members

import (
	"context"
	"net/http"

	uierrors "github.com/jcollier/memberportal/internal/app/features/errors"
	memberstore "github.com/jcollier/memberportal/internal/app/store/members"
	"github.com/jcollier/memberportal/internal/app/system/timeouts"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler is the read-only members viewer. It only lists; there are no
// edit, delete, or update routes.
type Handler struct {
	Members *memberstore.Store
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(db *gorm.DB, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Members: memberstore.New(db),
		ErrLog:  errLog,
		Log:     logger,
	}
}

// ServeList renders all registered members in insertion order.
// GET /members
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	all, err := h.Members.ListAll(ctx)
	if err != nil {
		h.ErrLog.Internal(r, "member list failed", err)
		uierrors.RenderServerError(w, r)
		return
	}

	data := listData{
		Title: "Registered Members",
		Total: len(all),
	}
	for _, m := range all {
		data.Rows = append(data.Rows, memberRow{
			ID:         m.ID,
			Name:       m.Name,
			Surname:    m.Surname,
			Mobile:     m.Mobile,
			Email:      m.Email,
			Registered: m.RegistrationDate.Format("2006-01-02"),
		})
	}

	templates.Render(w, r, "member_list", data)
}
