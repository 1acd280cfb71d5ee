// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderBadRequest shows a friendly page for malformed submissions.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "The request could not be understood."
	}
	w.WriteHeader(http.StatusBadRequest)
	templates.Render(w, r, "error_page", pageData{
		Title:   "Bad request",
		Message: msg,
		BackURL: httpnav.ResolveBackURL(r, "/"),
	})
}

// RenderServerError shows a friendly page when the store or another backend
// fails. The underlying error belongs in the log, not on the page.
func RenderServerError(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", pageData{
		Title:   "Something went wrong",
		Message: "Registration failed. Please try again.",
		BackURL: httpnav.ResolveBackURL(r, "/"),
	})
}

// RenderNotFound shows a friendly 404 page.
func RenderNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", pageData{
		Title:   "Page not found",
		Message: "The page you were looking for does not exist.",
		BackURL: "/",
	})
}
