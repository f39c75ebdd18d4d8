package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/erazemk/ecoshare/internal/notify"
	"github.com/erazemk/ecoshare/internal/render"
	"github.com/erazemk/ecoshare/internal/store"
	webembed "github.com/erazemk/ecoshare/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"board.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl, err := template.New(page).Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// Notice is a banner as the layout renders it. ShowAt and HideAt are
// milliseconds from page load.
type Notice struct {
	ID      string
	Message string
	ShowAt  int64
	HideAt  int64
}

func newNotices(ns []notify.Notification) []Notice {
	out := make([]Notice, 0, len(ns))
	for _, n := range ns {
		tl := n.Timeline()
		out = append(out, Notice{
			ID:      n.ID,
			Message: n.Message,
			ShowAt:  tl.ShowAt.Milliseconds(),
			HideAt:  tl.HideAt.Milliseconds(),
		})
	}
	return out
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title   string
	Notices []Notice
}

// Server holds all dependencies for page handlers.
type Server struct {
	Board     *store.Board
	Renderer  *render.Renderer
	Templates *Templates
	Flash     *notify.Flash
}
