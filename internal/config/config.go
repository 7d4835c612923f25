// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server and the docs page.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	LogLevel        string

	// SchemaPath is the file produced by the external schema compiler.
	SchemaPath  string
	SchemaRoute string

	Viewer     string
	DocsTitle  string
	AssetsBase string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 10),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		SchemaPath:      getenv("SCHEMA_PATH", "openapi.yaml"),
		SchemaRoute:     getenv("SCHEMA_ROUTE", "/openapi.yaml"),
		Viewer:          getenv("DOCS_VIEWER", "swagger"),
		DocsTitle:       getenv("DOCS_TITLE", "API Reference"),
		AssetsBase:      getenv("DOCS_ASSETS_URL", ""),
	}
}
