// internal/app/features/reports/routes.go
package reports

import "github.com/go-chi/chi/v5"

// Routes mounts the report routes.
// Typically: r.Mount("/reports", reports.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/members.csv", h.ServeMembersCSV)
	return r
}
