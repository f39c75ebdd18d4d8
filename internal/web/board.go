package web

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/erazemk/ecoshare/internal/model"
	"github.com/erazemk/ecoshare/internal/render"
)

// BoardPage handles GET /.
func (s *Server) BoardPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := filterFromValue(q.Get(filterParam))
	dialog := dialogFromQuery(q)
	today := s.Board.Today()

	items, err := s.Board.All(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	present, err := s.Board.Categories(r.Context())
	if err != nil {
		slog.Error("failed to list categories", "error", err)
	}

	grid, err := s.Renderer.Grid(items, filter, today)
	if err != nil {
		slog.Error("failed to render grid", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "board.html", &struct {
		PageData
		Stats       model.Stats
		Filters     []FilterOption
		Filter      string
		Grid        template.HTML
		DialogOpen  bool
		OpenURL     string
		CloseURL    string
		CancelURL   string
		BackdropURL string
		Categories  []model.Category
		Today       string
	}{
		PageData:    PageData{Title: "Community Board", Notices: newNotices(s.Flash.Pop(w, r))},
		Stats:       render.Stats(items),
		Filters:     filterOptions(filter, present),
		Filter:      filter,
		Grid:        grid,
		DialogOpen:  bool(dialog),
		OpenURL:     boardURL(filter, dialog.Next(EventOpen)),
		CloseURL:    boardURL(filter, dialog.Next(EventClose)),
		CancelURL:   boardURL(filter, dialog.Next(EventCancel)),
		BackdropURL: boardURL(filter, dialog.Next(EventBackdrop)),
		Categories:  model.Categories(),
		Today:       today.String(),
	})
}

// GridFragment handles GET /grid and returns only the grid region.
func (s *Server) GridFragment(w http.ResponseWriter, r *http.Request) {
	filter := filterFromValue(r.URL.Query().Get(filterParam))

	items, err := s.Board.All(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	grid, err := s.Renderer.Grid(items, filter, s.Board.Today())
	if err != nil {
		slog.Error("failed to render grid", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write([]byte(grid)); err != nil {
		slog.Error("failed to write grid response", "error", err)
	}
}
