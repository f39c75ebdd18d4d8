package api

import (
	"net/http"

	"github.com/erazemk/ecoshare/internal/notify"
	"github.com/erazemk/ecoshare/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(board *store.Board, surface *notify.Surface) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{Board: board, Surface: surface}

	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("POST /api/items/{id}/contact", itemsHandler.Contact)
	mux.HandleFunc("GET /api/stats", itemsHandler.Stats)
	mux.HandleFunc("GET /api/notifications", itemsHandler.Notifications)

	return mux
}
