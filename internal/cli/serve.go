package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/schema-docs-server/internal/buildinfo"
	"github.com/fairyhunter13/schema-docs-server/internal/config"
	httpapi "github.com/fairyhunter13/schema-docs-server/internal/http"
	"github.com/fairyhunter13/schema-docs-server/internal/obs"
	"github.com/fairyhunter13/schema-docs-server/internal/schema"
)

// serveOptions are flag overrides applied on top of the environment.
type serveOptions struct {
	addr   string
	schema string
	viewer string
	title  string
}

func (o *serveOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	f.StringVar(&o.schema, "schema", "", "schema document path (overrides SCHEMA_PATH)")
	f.StringVar(&o.viewer, "viewer", "", "docs viewer: swagger, redoc or scalar (overrides DOCS_VIEWER)")
	f.StringVar(&o.title, "title", "", "docs page title (overrides DOCS_TITLE)")
}

func (o serveOptions) apply(cfg *config.Config) {
	if o.addr != "" {
		cfg.HTTPAddr = o.addr
	}
	if o.schema != "" {
		cfg.SchemaPath = o.schema
	}
	if o.viewer != "" {
		cfg.Viewer = o.viewer
	}
	if o.title != "" {
		cfg.DocsTitle = o.title
	}
}

func serveCmd() *cobra.Command {
	var so serveOptions
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the docs server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, so)
		},
	}
	so.bind(c)
	return c
}

func runServe(cmd *cobra.Command, so serveOptions) error {
	cfg := config.Load()
	so.apply(&cfg)
	obs.InitLoggerWith(os.Stdout, cfg.LogLevel)
	obs.Logger.Info("service_starting", "version", buildinfo.Version)

	app, err := httpapi.NewApp(cfg)
	if err != nil {
		obs.Logger.Error("config_error", "error", err)
		return err
	}
	logSchemaSummary(app.Schema)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr, "schema_path", cfg.SchemaPath, "viewer", cfg.Viewer)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			obs.Logger.Error("http_server_error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}
	obs.Logger.Info("shutdown_signal", "timeout_sec", cfg.ShutdownTimeout.Seconds())

	ctxSrv, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
		return err
	}
	obs.Logger.Info("service_stopped")
	return nil
}

// logSchemaSummary reports what the server is about to publish. Problems are
// logged only: the viewer surfaces them to readers.
func logSchemaSummary(f *schema.File) {
	b, err := f.Read()
	if err != nil {
		obs.Logger.Warn("schema_unavailable", "path", f.Path, "error", err)
		return
	}
	s, err := schema.Inspect(b)
	if err != nil {
		obs.Logger.Warn("schema_unparseable", "path", f.Path, "error", err)
		return
	}
	obs.Logger.Info("schema_inspected",
		"path", f.Path,
		"openapi", s.OpenAPI,
		"title", s.Title,
		"version", s.Version,
		"paths", s.Paths,
		"operations", s.Operations,
	)
}
