package model

// Item is a single shared listing on the board.
type Item struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Location    string   `json:"location"`
	Contact     string   `json:"contact"`
	Expires     *Date    `json:"expires"`
	Posted      Date     `json:"posted"`
	HasPhoto    bool     `json:"has_photo,omitempty"`
}

// Draft holds the user-entered fields of an item that is about to be shared.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Location    string   `json:"location"`
	Contact     string   `json:"contact"`
	Expires     *Date    `json:"expires,omitempty"`
}

// FilterAll is the unfiltered board state.
const FilterAll = "all"

// Matches reports whether the item belongs in the grid for the given filter.
func (i *Item) Matches(filter string) bool {
	return filter == FilterAll || string(i.Category) == filter
}

// Urgent reports whether the expiry badge should carry the urgent marker.
// Items expiring within two days are urgent, and so are items already past
// their expiry date. Items without an expiry are never urgent.
func (i *Item) Urgent(today Date) bool {
	if i.Expires == nil {
		return false
	}
	return i.Expires.DaysUntil(today) <= UrgentDays
}

// UrgentDays is the number of whole days before expiry at which an item
// becomes urgent.
const UrgentDays = 2
