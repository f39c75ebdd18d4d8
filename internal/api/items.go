package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/ecoshare/internal/model"
	"github.com/erazemk/ecoshare/internal/notify"
	"github.com/erazemk/ecoshare/internal/store"
)

// ItemsHandler handles the board's JSON endpoints.
type ItemsHandler struct {
	Board   *store.Board
	Surface *notify.Surface
}

type createItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
	Expires     string `json:"expires"`
}

type contactResponse struct {
	model.ContactAction
	Notification *notify.Notification `json:"notification,omitempty"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = model.FilterAll
	}
	items, err := h.Board.Filtered(r.Context(), category)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items. Like the form, it stores whatever it is
// given; a blank or malformed expiry means the item does not expire.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Board.Add(r.Context(), model.Draft{
		Title:       req.Title,
		Description: req.Description,
		Category:    model.Category(req.Category),
		Location:    req.Location,
		Contact:     req.Contact,
		Expires:     model.ParseOptionalDate(req.Expires),
	})
	if err != nil {
		slog.Error("failed to share item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}
	slog.Info("item shared", "id", item.ID, "title", item.Title, "category", item.Category, "via", "api")

	h.Surface.Notify(notify.SharedMessage, notify.DefaultDuration)
	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, ok := h.item(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Contact handles POST /api/items/{id}/contact.
func (h *ItemsHandler) Contact(w http.ResponseWriter, r *http.Request) {
	item, ok := h.item(w, r)
	if !ok {
		return
	}

	resp := contactResponse{ContactAction: model.NewContactAction(item.Contact, item.Title)}
	if resp.Kind == model.ContactShow {
		n := h.Surface.Notify(resp.Message, notify.ContactDuration)
		resp.Notification = &n
	}
	jsonResponse(w, http.StatusOK, resp)
}

// Stats handles GET /api/stats.
func (h *ItemsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Board.Stats(r.Context())
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	jsonResponse(w, http.StatusOK, stats)
}

// Notifications handles GET /api/notifications.
func (h *ItemsHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Surface.Active())
}

// item resolves the {id} path value, writing an error response on failure.
func (h *ItemsHandler) item(w http.ResponseWriter, r *http.Request) (*model.Item, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return nil, false
	}

	item, err := h.Board.Get(r.Context(), id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return nil, false
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return nil, false
	}
	return item, true
}
