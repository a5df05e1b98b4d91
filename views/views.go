// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
)

// Page names accepted by Render
const (
	PageIndex    = "index"
	PageDetail   = "detail"
	PageResults  = "results"
	PageNotFound = "not_found"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/style.css
var staticFS embed.FS

var funcs = template.FuncMap{
	// since renders t relative to now, e.g. "3 days ago"
	"since": func(t, now time.Time) string {
		return humanize.RelTime(t, now, "ago", "from now")
	},
	"comma": humanize.Comma,
	"plural": func(n int64, singular, plural string) string {
		if n == 1 {
			return singular
		}
		return plural
	},
	"percent": func(f float64) string {
		return humanize.FtoaWithDigits(f, 1) + "%"
	},
	"isoDate": func(t time.Time) string {
		return t.UTC().Format(time.RFC3339)
	},
}

// Renderer holds one parsed template set per page
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{PageIndex, PageDetail, PageResults, PageNotFound} {
		t, err := template.New("base.html").Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the named page into a buffer and writes it with status.
// Nothing is written if the template fails; that is the only error returned.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		// Headers are gone; the client most likely disconnected
		slog.Debug("failed to write page", "page", name, "error", err)
	}
	return nil
}

// ServeStylesheet serves the embedded stylesheet
func ServeStylesheet(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, staticFS, "static/style.css")
}
