package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/ecoshare/internal/imaging"
	"github.com/erazemk/ecoshare/internal/model"
	"github.com/erazemk/ecoshare/internal/notify"
)

// ItemCreateSubmit handles POST /items.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUpload+1<<20)
	if err := r.ParseMultipartForm(imaging.MaxUpload); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "file too large", http.StatusBadRequest)
		return
	}

	filter := filterFromValue(r.FormValue(filterParam))
	draft := model.Draft{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    model.Category(r.FormValue("category")),
		Location:    r.FormValue("location"),
		Contact:     r.FormValue("contact"),
		Expires:     model.ParseOptionalDate(r.FormValue("expires")),
	}

	item, err := s.Board.Add(r.Context(), draft)
	if err != nil {
		slog.Error("failed to share item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	slog.Info("item shared", "id", item.ID, "title", item.Title, "category", item.Category)

	s.attachPhoto(r, item.ID)

	if err := s.Flash.Push(w, r, notify.New(notify.SharedMessage, notify.DefaultDuration)); err != nil {
		slog.Error("failed to queue notification", "error", err)
	}
	http.Redirect(w, r, boardURL(filter, DialogOpen.Next(EventSubmitted)), http.StatusSeeOther)
}

// attachPhoto stores the optional uploaded photo. A bad photo never fails
// the share.
func (s *Server) attachPhoto(r *http.Request, id int64) {
	file, _, err := r.FormFile("photo")
	if err != nil {
		return
	}
	defer file.Close()

	photo, err := imaging.Thumbnail(file)
	if err != nil {
		slog.Warn("ignoring item photo", "id", id, "error", err)
		return
	}
	if err := s.Board.SetPhoto(r.Context(), id, photo.Data, photo.MIME); err != nil {
		slog.Error("failed to save item photo", "id", id, "error", err)
	}
}

// ItemContactSubmit handles POST /items/{id}/contact.
func (s *Server) ItemContactSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := s.Board.Get(r.Context(), id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	action := model.NewContactAction(item.Contact, item.Title)
	slog.Info("contact requested", "id", item.ID, "action", action.Kind)

	if action.Kind == model.ContactMail {
		http.Redirect(w, r, action.MailURL, http.StatusSeeOther)
		return
	}

	if err := s.Flash.Push(w, r, notify.New(action.Message, notify.ContactDuration)); err != nil {
		slog.Error("failed to queue notification", "error", err)
	}
	filter := filterFromValue(r.FormValue(filterParam))
	http.Redirect(w, r, boardURL(filter, DialogClosed), http.StatusSeeOther)
}

// ItemPhotoGet handles GET /items/{id}/photo.
func (s *Server) ItemPhotoGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	data, mime, err := s.Board.Photo(r.Context(), id)
	if err != nil {
		slog.Error("failed to get photo", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	etag := imaging.ETag(data)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write photo response", "error", err)
	}
}
