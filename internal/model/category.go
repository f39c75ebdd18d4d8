package model

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category groups items for filtering and iconography. The form accepts any
// value, so a Category may fall outside the known set.
type Category string

// Known categories.
const (
	CategoryFood      Category = "food"
	CategoryBooks     Category = "books"
	CategoryTools     Category = "tools"
	CategoryHousehold Category = "household"
	CategoryOther     Category = "other"
)

// defaultIcon is shown for categories outside the known set.
const defaultIcon = "📦"

var icons = map[Category]string{
	CategoryFood:      "🍎",
	CategoryBooks:     "📚",
	CategoryTools:     "🔧",
	CategoryHousehold: "🏠",
	CategoryOther:     "📦",
}

// Categories returns the known categories in display order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryBooks, CategoryTools, CategoryHousehold, CategoryOther}
}

// Known reports whether c is one of the fixed categories.
func (c Category) Known() bool {
	_, ok := icons[c]
	return ok
}

// Icon returns the category's icon, falling back to the default icon.
func (c Category) Icon() string {
	if !c.Known() {
		return defaultIcon
	}
	return icons[c]
}

// Label returns the title-cased display label, e.g. "Household".
func (c Category) Label() string {
	return cases.Title(language.AmericanEnglish).String(string(c))
}
