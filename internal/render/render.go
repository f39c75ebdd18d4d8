// Package render turns board items into the card grid and its statistics.
// Everything here is a pure function of its inputs.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"slices"

	"github.com/erazemk/ecoshare/internal/model"
	webembed "github.com/erazemk/ecoshare/web"
)

// NoItemsMessage is shown in place of the grid when the filter matches
// nothing.
const NoItemsMessage = "No items found in this category. Be the first to share!"

// Card is the view of one item in the grid.
type Card struct {
	ID          int64
	Icon        string
	Category    string
	Title       string
	Description string
	Location    string
	Posted      string
	Expires     string
	Urgent      bool
	HasPhoto    bool
}

// Renderer renders the grid region from the embedded grid template.
type Renderer struct {
	tmpl *template.Template
}

// New parses the grid template.
func New() (*Renderer, error) {
	src, err := fs.ReadFile(webembed.TemplatesFS(), "grid.html")
	if err != nil {
		return nil, fmt.Errorf("reading grid template: %w", err)
	}
	tmpl, err := template.New("grid.html").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing grid template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Select applies the board filter to items, keeping their order.
func Select(items []model.Item, filter string) []model.Item {
	var out []model.Item
	for i := range items {
		if items[i].Matches(filter) {
			out = append(out, items[i])
		}
	}
	return out
}

// Cards selects the filtered items and orders them newest-posted first.
// Items posted on the same day keep their board order. items is not
// modified.
func Cards(items []model.Item, filter string, today model.Date) []Card {
	selected := Select(items, filter)
	slices.SortStableFunc(selected, func(a, b model.Item) int {
		return b.Posted.Compare(a.Posted)
	})

	cards := make([]Card, 0, len(selected))
	for i := range selected {
		cards = append(cards, newCard(&selected[i], today))
	}
	return cards
}

func newCard(item *model.Item, today model.Date) Card {
	c := Card{
		ID:          item.ID,
		Icon:        item.Category.Icon(),
		Category:    string(item.Category),
		Title:       item.Title,
		Description: item.Description,
		Location:    item.Location,
		Posted:      item.Posted.Short(),
		HasPhoto:    item.HasPhoto,
	}
	if item.Expires != nil {
		c.Expires = item.Expires.Short()
		c.Urgent = item.Urgent(today)
	}
	return c
}

// Grid renders the markup for the grid region.
func (r *Renderer) Grid(items []model.Item, filter string, today model.Date) (template.HTML, error) {
	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, struct {
		Cards  []Card
		Empty  string
		Filter string
	}{
		Cards:  Cards(items, filter, today),
		Empty:  NoItemsMessage,
		Filter: filter,
	})
	if err != nil {
		return "", fmt.Errorf("rendering grid: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Stats derives the board statistics from the full item list.
func Stats(items []model.Item) model.Stats {
	return model.NewStats(len(items))
}
