package schema

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func readTestdata(t *testing.T) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", "widgets.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestFileContentType(t *testing.T) {
	cases := map[string]string{
		"openapi.yaml": "application/yaml",
		"openapi.yml":  "application/yaml",
		"openapi.JSON": "application/json",
	}
	for p, want := range cases {
		if got := NewFile(p).ContentType(); got != want {
			t.Fatalf("%s: got %s want %s", p, got, want)
		}
	}
}

func TestFileReadReflectsRewrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "openapi.yaml")
	if err := os.WriteFile(p, []byte("openapi: 3.0.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := NewFile(p)
	b, err := f.Read()
	if err != nil || string(b) != "openapi: 3.0.0\n" {
		t.Fatalf("first read: %q %v", b, err)
	}
	if err := os.WriteFile(p, []byte("openapi: 3.1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err = f.Read()
	if err != nil || string(b) != "openapi: 3.1.0\n" {
		t.Fatalf("second read: %q %v", b, err)
	}
}

func TestFileMissing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := f.Read(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Read: expected ErrNotFound, got %v", err)
	}
	if _, _, err := f.Open(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Open: expected ErrNotFound, got %v", err)
	}
	if _, _, err := NewFile(t.TempDir()).Open(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Open dir: expected ErrNotFound, got %v", err)
	}
}

func TestYAMLToJSON(t *testing.T) {
	out, err := YAMLToJSON(readTestdata(t))
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("not json: %v", err)
	}
	if doc["openapi"] != "3.0.0" {
		t.Fatalf("unexpected openapi field: %v", doc["openapi"])
	}
	get := doc["paths"].(map[string]any)["/widgets"].(map[string]any)["get"].(map[string]any)
	if _, ok := get["responses"].(map[string]any)["200"]; !ok {
		t.Fatalf("expected integer status key to become \"200\": %v", get["responses"])
	}
}

func TestYAMLToJSONErrors(t *testing.T) {
	for _, in := range []string{"", "a: [1, 2"} {
		if _, err := YAMLToJSON([]byte(in)); !errors.Is(err, ErrUnparseable) {
			t.Fatalf("%q: expected ErrUnparseable, got %v", in, err)
		}
	}
}

func TestFileJSONPassThrough(t *testing.T) {
	p := filepath.Join(t.TempDir(), "openapi.json")
	raw := `{"openapi":"3.0.0",  "info":{}}`
	if err := os.WriteFile(p, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := NewFile(p).JSON()
	if err != nil || string(out) != raw {
		t.Fatalf("expected bytes unchanged, got %q %v", out, err)
	}
}

func TestInspect(t *testing.T) {
	s, err := Inspect(readTestdata(t))
	if err != nil {
		t.Fatal(err)
	}
	want := Summary{OpenAPI: "3.0.0", Title: "Widget Service", Version: "0.0.0", Paths: 2, Operations: 3}
	if s != want {
		t.Fatalf("got %+v want %+v", s, want)
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	if err := Validate(ctx, readTestdata(t)); err != nil {
		t.Fatalf("expected valid document: %v", err)
	}
	if err := Validate(ctx, []byte("openapi: 3.0.0\ninfo:\n  version: 1.0.0\npaths: {}\n")); err == nil {
		t.Fatalf("expected missing title to fail validation")
	}
	if err := Validate(ctx, []byte("{")); !errors.Is(err, ErrUnparseable) {
		t.Fatalf("expected ErrUnparseable, got %v", err)
	}
}
