// internal/app/features/register/handler.go
package register

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/jcollier/memberportal/internal/app/features/errors"
	memberstore "github.com/jcollier/memberportal/internal/app/store/members"
	"github.com/jcollier/memberportal/internal/app/system/flash"
	"github.com/jcollier/memberportal/internal/app/system/formutil"
	"github.com/jcollier/memberportal/internal/app/system/htmlsanitize"
	"github.com/jcollier/memberportal/internal/app/system/inputval"
	"github.com/jcollier/memberportal/internal/app/system/timeouts"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler serves the registration form and processes submissions.
type Handler struct {
	Members *memberstore.Store
	Flash   *flash.Manager
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(db *gorm.DB, fl *flash.Manager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Members: memberstore.New(db),
		Flash:   fl,
		ErrLog:  errLog,
		Log:     logger,
	}
}

// ServeForm renders the registration form.
// GET /register
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := formData{}
	formutil.SetBase(&data.Base, r, "Member Registration", "/")

	if msg, ok := h.Flash.Take(w, r); ok {
		data.SetSuccess(msg)
	}

	templates.Render(w, r, "register_form", data)
}

// HandleSubmit processes the registration form POST.
//
// Raw field values come in as plain form arguments and leave as either a
// stored member or a specific user-facing message; no form state is shared
// between requests. Duplicate detection happens inside the store's insert,
// not as a separate pre-check.
// POST /register
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "The submitted form could not be read.")
		return
	}

	// Markup has no business in a name field.
	name := htmlsanitize.StripTags(r.FormValue("name"))
	surname := htmlsanitize.StripTags(r.FormValue("surname"))
	mobile := r.FormValue("mobile")
	email := r.FormValue("email")

	member, fieldErrs := inputval.ValidateRegistration(name, surname, mobile, email)
	if len(fieldErrs) > 0 {
		msgs := make([]string, len(fieldErrs))
		for i, fe := range fieldErrs {
			msgs[i] = fe.Message
		}
		h.reRenderWithError(w, r, name, surname, mobile, email, strings.Join(msgs, " • "))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	created, err := h.Members.Insert(ctx, member)
	switch {
	case errors.Is(err, memberstore.ErrDuplicateMobile):
		h.reRenderWithError(w, r, name, surname, mobile, email, "Mobile number is already registered")
		return
	case errors.Is(err, memberstore.ErrDuplicateEmail):
		h.reRenderWithError(w, r, name, surname, mobile, email, "Email is already registered")
		return
	case err != nil:
		h.ErrLog.Internal(r, "member insert failed", err)
		uierrors.RenderServerError(w, r)
		return
	}

	h.Log.Info("new member registered",
		zap.Uint("id", created.ID),
		zap.String("email", created.Email),
		zap.String("mobile", created.Mobile),
	)

	h.Flash.Set(w, r, "Welcome "+created.FullName()+"! Registration successful.")
	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

// reRenderWithError echoes the raw values back with an inline error message.
func (h *Handler) reRenderWithError(w http.ResponseWriter, r *http.Request, name, surname, mobile, email, msg string) {
	data := formData{
		Name:    name,
		Surname: surname,
		Mobile:  mobile,
		Email:   email,
	}
	formutil.SetBase(&data.Base, r, "Member Registration", "/")
	data.SetError(msg)

	templates.Render(w, r, "register_form", data)
}
