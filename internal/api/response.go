package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// maxBody bounds JSON request bodies. Item drafts are a handful of short
// strings.
const maxBody = 64 << 10

// errorBody is the JSON shape of every API error.
type errorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// jsonResponse writes data as JSON with the given status code. A nil data
// writes only the status.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "status", status, "error", err)
	}
}

// jsonError writes an errorBody. Server-side failures are also logged.
func jsonError(w http.ResponseWriter, status int, message string) {
	if status >= http.StatusInternalServerError {
		slog.Error("api error", "status", status, "message", message)
	}
	jsonResponse(w, status, errorBody{Error: message, Status: status})
}

// decodeJSON reads one JSON value of at most maxBody bytes into target.
// Unknown fields are ignored; drafts are permissive.
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("decoding request body: trailing data")
	}
	return nil
}
