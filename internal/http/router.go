package httpapi

import (
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Use(WithRequestID, WithLogging, WithRecovery, middleware.GetHead)

	r.Get("/", app.docsHandler)
	r.Get(app.Cfg.SchemaRoute, app.schemaHandler)
	if jr := JSONRoute(app.Cfg.SchemaRoute); jr != app.Cfg.SchemaRoute {
		r.Get(jr, app.schemaJSONHandler)
	}
	r.Get("/healthz", app.healthHandler)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	})
	return r
}

// JSONRoute returns the route of the JSON rendition of the schema document:
// the schema route with its extension replaced by ".json".
func JSONRoute(schemaRoute string) string {
	return strings.TrimSuffix(schemaRoute, path.Ext(schemaRoute)) + ".json"
}
