package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fairyhunter13/schema-docs-server/internal/config"
	"github.com/fairyhunter13/schema-docs-server/internal/obs"
	"github.com/fairyhunter13/schema-docs-server/internal/schema"
	"github.com/fairyhunter13/schema-docs-server/internal/viewer"
)

// ErrInvalidSchemaRoute is returned by NewApp for a schema route chi cannot
// register or that would shadow another route.
var ErrInvalidSchemaRoute = errors.New("invalid schema route")

type App struct {
	Cfg    config.Config
	Schema *schema.File
	Page   *viewer.Page
}

// NewApp renders the docs page for cfg. The page is fixed for the lifetime
// of the App.
func NewApp(cfg config.Config) (*App, error) {
	if err := validateSchemaRoute(cfg.SchemaRoute); err != nil {
		return nil, err
	}
	flavor, err := viewer.ParseFlavor(cfg.Viewer)
	if err != nil {
		return nil, err
	}
	page, err := viewer.Render(viewer.Options{
		Flavor:     flavor,
		Title:      cfg.DocsTitle,
		SchemaURL:  cfg.SchemaRoute,
		AssetsBase: cfg.AssetsBase,
	})
	if err != nil {
		return nil, fmt.Errorf("httpapi: %w", err)
	}
	return &App{
		Cfg:    cfg,
		Schema: schema.NewFile(cfg.SchemaPath),
		Page:   page,
	}, nil
}

func validateSchemaRoute(route string) error {
	if !strings.HasPrefix(route, "/") {
		return fmt.Errorf("%w: %q must begin with '/'", ErrInvalidSchemaRoute, route)
	}
	if strings.ContainsAny(route, "{}*") {
		return fmt.Errorf("%w: %q must be a literal path", ErrInvalidSchemaRoute, route)
	}
	for _, r := range []string{route, JSONRoute(route)} {
		if r == "/" || r == "/healthz" {
			return fmt.Errorf("%w: %q collides with %s", ErrInvalidSchemaRoute, route, r)
		}
	}
	return nil
}

// docsHandler answers with the same 200 page for every request. Only
// If-None-Match is honoured; Range and the other preconditions are ignored.
func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("ETag", a.Page.ETag)
	if etagMatch(r.Header.Get("If-None-Match"), a.Page.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(a.Page.Body)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(a.Page.Body)
	}
}

// etagMatch applies the weak comparison If-None-Match uses.
func etagMatch(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, c := range strings.Split(header, ",") {
		c = strings.TrimSpace(c)
		if c == "*" || strings.TrimPrefix(c, "W/") == etag {
			return true
		}
	}
	return false
}

func (a *App) schemaHandler(w http.ResponseWriter, r *http.Request) {
	f, modTime, err := a.Schema.Open()
	if err != nil {
		a.schemaError(w, r, err)
		return
	}
	defer f.Close()
	w.Header().Set("Content-Type", a.Schema.ContentType())
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, filepath.Base(a.Schema.Path), modTime, f)
}

func (a *App) schemaJSONHandler(w http.ResponseWriter, r *http.Request) {
	b, err := a.Schema.JSON()
	if err != nil {
		a.schemaError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(b)
}

func (a *App) schemaError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, schema.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
	case errors.Is(err, schema.ErrUnparseable):
		WriteJSONError(w, http.StatusUnprocessableEntity, "schema_unparseable", err.Error())
	default:
		obs.Logger.Error("schema_read_error",
			"path", a.Schema.Path,
			"error", err,
			"request_id", RequestIDFromContext(r.Context()),
		)
		WriteJSONError(w, http.StatusInternalServerError, "schema_unreadable", "")
	}
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
