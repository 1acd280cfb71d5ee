// internal/app/features/members/routes.go
package members

import "github.com/go-chi/chi/v5"

// Routes mounts the viewer routes.
// Typically: r.Mount("/members", members.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
