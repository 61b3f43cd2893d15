// internal/app/features/browse/routes.go
package browse

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the catalog page router, mounted at /.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeCatalog)
	return r
}

// APIRoutes returns the JSON API router, mounted at /api/resources.
// Middlewares (rate limiting) wrap every API route.
func APIRoutes(h *Handler, middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeOne)
	return r
}
