// Package viewer renders the HTML page that hosts an off-the-shelf API
// documentation viewer pointed at a schema document URL.
package viewer

import (
	"bytes"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// Flavor names a supported documentation viewer.
type Flavor string

const (
	Swagger Flavor = "swagger"
	Redoc   Flavor = "redoc"
	Scalar  Flavor = "scalar"
)

// ErrUnknownFlavor is returned for viewer names outside Flavors.
var ErrUnknownFlavor = errors.New("unknown viewer flavor")

// Flavors lists the supported viewers in display order.
var Flavors = []Flavor{Swagger, Redoc, Scalar}

var defaultAssets = map[Flavor]string{
	Swagger: "https://unpkg.com/swagger-ui-dist@5",
	Redoc:   "https://cdn.redoc.ly/redoc/latest/bundles",
	Scalar:  "https://cdn.jsdelivr.net/npm/@scalar/api-reference",
}

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// ParseFlavor normalizes s and reports whether it names a supported viewer.
func ParseFlavor(s string) (Flavor, error) {
	f := Flavor(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := defaultAssets[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFlavor, s)
	}
	return f, nil
}

// Options configures a rendered page.
type Options struct {
	Flavor    Flavor
	Title     string
	SchemaURL string
	// AssetsBase overrides the CDN location of the viewer bundle.
	AssetsBase string
}

// Page is an immutable rendered viewer page.
type Page struct {
	Body []byte
	ETag string
}

type pageData struct {
	Title     string
	SchemaURL string
	Assets    string
}

// Render builds the page once; the returned bytes never change.
func Render(o Options) (*Page, error) {
	if o.Flavor == "" {
		o.Flavor = Swagger
	}
	def, ok := defaultAssets[o.Flavor]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlavor, o.Flavor)
	}
	if o.SchemaURL == "" {
		return nil, errors.New("viewer: schema url is required")
	}
	assets := strings.TrimRight(o.AssetsBase, "/")
	if assets == "" {
		assets = def
	}
	title := o.Title
	if title == "" {
		title = "API Reference"
	}

	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, string(o.Flavor)+".html.tmpl", pageData{
		Title:     title,
		SchemaURL: o.SchemaURL,
		Assets:    assets,
	})
	if err != nil {
		return nil, fmt.Errorf("viewer: render %s: %w", o.Flavor, err)
	}
	sum := sha256.Sum256(buf.Bytes())
	return &Page{
		Body: buf.Bytes(),
		ETag: `"` + hex.EncodeToString(sum[:8]) + `"`,
	}, nil
}
