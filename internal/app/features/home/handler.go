// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the landing page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeRoot renders the landing page.
// GET /
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Title string
	}{
		Title: "Welcome",
	}

	templates.Render(w, r, "home", data)
}
