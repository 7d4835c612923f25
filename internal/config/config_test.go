package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "SCHEMA_PATH", "SCHEMA_ROUTE", "DOCS_VIEWER", "DOCS_TITLE", "DOCS_ASSETS_URL"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr default")
	}
	if c.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout default")
	}
	if c.LogLevel != "info" {
		t.Fatalf("LogLevel default")
	}
	if c.SchemaPath != "openapi.yaml" || c.SchemaRoute != "/openapi.yaml" {
		t.Fatalf("schema defaults: %+v", c)
	}
	if c.Viewer != "swagger" || c.DocsTitle != "API Reference" || c.AssetsBase != "" {
		t.Fatalf("docs defaults: %+v", c)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCHEMA_PATH", "/srv/tsp-output/openapi.yaml")
	t.Setenv("SCHEMA_ROUTE", "/schema.yaml")
	t.Setenv("DOCS_VIEWER", "redoc")
	t.Setenv("DOCS_TITLE", "Widgets")
	t.Setenv("DOCS_ASSETS_URL", "https://cdn.example.com/redoc")
	c := Load()
	if c.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr env")
	}
	if c.ShutdownTimeout != 2*time.Second {
		t.Fatalf("ShutdownTimeout env")
	}
	if c.LogLevel != "debug" {
		t.Fatalf("LogLevel env")
	}
	if c.SchemaPath != "/srv/tsp-output/openapi.yaml" || c.SchemaRoute != "/schema.yaml" {
		t.Fatalf("schema env: %+v", c)
	}
	if c.Viewer != "redoc" || c.DocsTitle != "Widgets" || c.AssetsBase != "https://cdn.example.com/redoc" {
		t.Fatalf("docs env: %+v", c)
	}
}

func TestLoadBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	if c := Load(); c.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected default on parse error, got %v", c.ShutdownTimeout)
	}
}
