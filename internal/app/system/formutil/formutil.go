// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a submission fails validation, the form is re-rendered with the user's
// previously entered values echoed back and a message explaining what went
// wrong. Base carries the common fields; embed it in a feature's form data
// struct and call SetBase in the handler.
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
)

// Base contains common fields for form pages.
type Base struct {
	Title       string
	BackURL     string
	CurrentPath string
	Error       template.HTML
	Success     template.HTML
}

// SetBase populates the common Base fields from the request.
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	b.Title = title
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = httpnav.CurrentPath(r)
}

// SetError sets the error message shown above the form.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(msg)
}

// SetSuccess sets the success message shown above the form.
func (b *Base) SetSuccess(msg string) {
	b.Success = template.HTML(msg)
}
