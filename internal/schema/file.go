// Package schema gives read-only access to the schema document produced by
// the external compiler. The document is opaque to the server: it is read
// from disk on every call and never rewritten.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound reports that the document does not exist on disk.
	ErrNotFound = errors.New("schema document not found")
	// ErrUnparseable reports that the document could not be decoded.
	ErrUnparseable = errors.New("schema document unparseable")
)

// File is a schema document at a fixed path.
type File struct {
	Path string
}

// NewFile returns a File for path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// IsJSON reports whether the document is stored as JSON.
func (f *File) IsJSON() bool {
	return strings.EqualFold(filepath.Ext(f.Path), ".json")
}

// ContentType returns the media type matching the file extension.
func (f *File) ContentType() string {
	if f.IsJSON() {
		return "application/json"
	}
	return "application/yaml"
}

// Open opens the document for serving. The caller closes the file.
func (f *File) Open() (*os.File, time.Time, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, time.Time{}, wrapOpen(f.Path, err)
	}
	st, err := fh.Stat()
	if err != nil {
		_ = fh.Close()
		return nil, time.Time{}, fmt.Errorf("schema: stat %s: %w", f.Path, err)
	}
	if st.IsDir() {
		_ = fh.Close()
		return nil, time.Time{}, fmt.Errorf("%w: %s is a directory", ErrNotFound, f.Path)
	}
	return fh, st.ModTime(), nil
}

// Read returns the current bytes of the document.
func (f *File) Read() ([]byte, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, wrapOpen(f.Path, err)
	}
	return b, nil
}

// JSON returns the document as JSON. JSON sources pass through unchanged;
// YAML sources are decoded and re-encoded.
func (f *File) JSON() ([]byte, error) {
	b, err := f.Read()
	if err != nil {
		return nil, err
	}
	if f.IsJSON() {
		return b, nil
	}
	return YAMLToJSON(b)
}

// YAMLToJSON converts a YAML document into JSON.
func YAMLToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: empty document", ErrUnparseable)
	}
	out, err := json.Marshal(normalize(v))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return out, nil
}

// normalize rewrites non-string map keys (e.g. unquoted status codes) so the
// value is JSON-encodable.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	default:
		return v
	}
}

func wrapOpen(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return fmt.Errorf("schema: open %s: %w", path, err)
}
