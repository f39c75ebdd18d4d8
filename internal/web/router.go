package web

import (
	"net/http"

	"github.com/erazemk/ecoshare/internal/notify"
	"github.com/erazemk/ecoshare/internal/render"
	"github.com/erazemk/ecoshare/internal/store"
	webembed "github.com/erazemk/ecoshare/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(board *store.Board, flash *notify.Flash) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Board:     board,
		Renderer:  renderer,
		Templates: templates,
		Flash:     flash,
	}

	mux := http.NewServeMux()

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.BoardPage)
	mux.HandleFunc("GET /grid", s.GridFragment)
	mux.HandleFunc("POST /items", s.ItemCreateSubmit)
	mux.HandleFunc("POST /items/{id}/contact", s.ItemContactSubmit)
	mux.HandleFunc("GET /items/{id}/photo", s.ItemPhotoGet)

	return mux, nil
}
