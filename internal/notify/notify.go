// Package notify implements the board's transient banners: short messages
// that appear shortly after being raised, stay visible for a while, and then
// fade out and disappear on their own.
package notify

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultDuration is how long a banner stays up unless told otherwise.
	DefaultDuration = 3000 * time.Millisecond
	// ContactDuration is used for banners that show contact details.
	ContactDuration = 5000 * time.Millisecond
	// ShowDelay lets the enter transition register before the banner shows.
	ShowDelay = 100 * time.Millisecond
	// FadeOut is how long the exit transition runs before removal.
	FadeOut = 300 * time.Millisecond
)

// SharedMessage is the banner raised after an item is shared.
const SharedMessage = "Item shared successfully! 🎉"

// Notification is a single transient banner.
type Notification struct {
	ID       string
	Message  string
	Duration time.Duration
}

// New returns a notification with a fresh ID. A non-positive duration means
// DefaultDuration.
func New(message string, duration time.Duration) Notification {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Duration: duration,
	}
}

// Timeline holds the offsets, measured from insertion, at which a banner
// changes state.
type Timeline struct {
	ShowAt   time.Duration
	HideAt   time.Duration
	RemoveAt time.Duration
}

// Timeline returns the banner's schedule. The visible period ends Duration
// after insertion, not after the show delay.
func (n Notification) Timeline() Timeline {
	return Timeline{
		ShowAt:   ShowDelay,
		HideAt:   n.Duration,
		RemoveAt: n.Duration + FadeOut,
	}
}

type wireNotification struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	DurationMS int64  `json:"duration_ms"`
}

// MarshalJSON encodes the duration in milliseconds.
func (n Notification) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNotification{
		ID:         n.ID,
		Message:    n.Message,
		DurationMS: n.Duration.Milliseconds(),
	})
}

// UnmarshalJSON decodes a notification with a millisecond duration.
func (n *Notification) UnmarshalJSON(data []byte) error {
	var w wireNotification
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	n.ID = w.ID
	n.Message = w.Message
	n.Duration = time.Duration(w.DurationMS) * time.Millisecond
	return nil
}
