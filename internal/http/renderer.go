package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// TemplateRenderer renders HTML pages. Every page template is parsed into its
// own set cloned from the shared layout, so each page defines "content" and
// the layout stays in one file.
type TemplateRenderer struct {
	pages  map[string]*template.Template
	errTpl *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

var templateFuncs = template.FuncMap{
	"deref": func(p *int64) int64 {
		if p == nil {
			return 0
		}
		return *p
	},
	"formatDate": formatDate,
}

// dateLayouts are the timestamp shapes the backend emits, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// formatDate renders a backend date string in a readable form. Unparseable
// values pass through unchanged rather than breaking the page.
func formatDate(value string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return value
}

// NewTemplateRenderer constructs a renderer by parsing layout.tmpl, error.tmpl
// and every template under pages/.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	base, err := template.New("root").Funcs(templateFuncs).ParseFS(cfg.TemplateFS, "layout.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pageFiles, err := fs.Glob(cfg.TemplateFS, "pages/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout: %w", err)
		}
		t, err := clone.ParseFS(cfg.TemplateFS, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(file, "pages/"), ".tmpl")
		pages[name] = t
	}

	errTpl, err := template.New("error").Funcs(templateFuncs).ParseFS(cfg.TemplateFS, "error.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse error template: %w", err)
	}

	return &TemplateRenderer{
		pages:  pages,
		errTpl: errTpl,
		logger: cfg.Logger,
	}, nil
}

// HasPage reports whether a page template exists for the given name.
func (r *TemplateRenderer) HasPage(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// RenderPage renders the full page (layout + page content) with status 200.
func (r *TemplateRenderer) RenderPage(w http.ResponseWriter, name string, data PageData) error {
	return r.RenderPageStatus(w, http.StatusOK, name, data)
}

// RenderPageStatus renders a page with an explicit HTTP status, used when a
// form re-renders with validation feedback.
func (r *TemplateRenderer) RenderPageStatus(w http.ResponseWriter, status int, name string, data PageData) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("no template for page %q", name)
	}
	return r.execute(w, status, t, "layout", data)
}

// RenderError renders the standalone error page.
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, data ErrorPageData) error {
	if data.Title == "" {
		data.Title = http.StatusText(data.Status)
	}
	return r.execute(w, data.Status, r.errTpl, "error-layout", data)
}

// execute buffers the render so a template failure never emits a half page.
func (r *TemplateRenderer) execute(w http.ResponseWriter, status int, t *template.Template, name string, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		if r.logger != nil {
			r.logger.Error("template execution failed",
				slog.String("template", name),
				slog.Any("error", err),
			)
		}
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		if r.logger != nil {
			r.logger.Error("failed to write rendered template",
				slog.String("template", name),
				slog.Any("error", err),
			)
		}
		return err
	}
	return nil
}
