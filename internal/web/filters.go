package web

import (
	"github.com/erazemk/ecoshare/internal/model"
)

// FilterOption is one filter control in the toolbar.
type FilterOption struct {
	Value  string
	Label  string
	URL    string
	Active bool
}

// filterOptions lists "all", the known categories and any other category
// present on the board. The active filter is always among them, so exactly
// one control is marked active.
func filterOptions(active string, present []model.Category) []FilterOption {
	values := []string{model.FilterAll}
	seen := map[string]bool{model.FilterAll: true}
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	for _, c := range model.Categories() {
		add(string(c))
	}
	for _, c := range present {
		add(string(c))
	}
	add(active)

	opts := make([]FilterOption, 0, len(values))
	for _, v := range values {
		label := model.Category(v).Label()
		if v == model.FilterAll {
			label = "All"
		}
		opts = append(opts, FilterOption{
			Value:  v,
			Label:  label,
			URL:    boardURL(v, DialogClosed),
			Active: v == active,
		})
	}
	return opts
}
