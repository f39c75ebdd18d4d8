package render

import (
	"strings"
	"testing"

	"github.com/erazemk/ecoshare/internal/model"
)

var today = model.NewDate(2025, 1, 16)

func date(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *model.Date {
	d := date(s)
	return &d
}

// sampleItems mirrors the seeded board, front first.
func sampleItems() []model.Item {
	return []model.Item{
		{ID: 1, Title: "Fresh Homegrown Tomatoes", Category: "food", Location: "Oak Street", Contact: "sarah.garden@email.com", Expires: datePtr("2025-01-20"), Posted: date("2025-01-15")},
		{ID: 2, Title: "Complete Harry Potter Book Set", Category: "books", Location: "Maple Avenue", Contact: "bookworm42@email.com", Posted: date("2025-01-14")},
		{ID: 3, Title: "Power Drill & Tool Set", Category: "tools", Location: "Pine Street", Contact: "handyman.joe@email.com", Posted: date("2025-01-13")},
		{ID: 4, Title: "Leftover Party Food", Category: "food", Location: "Downtown", Contact: "office.manager@email.com", Expires: datePtr("2025-01-16"), Posted: date("2025-01-15")},
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func ids(cards []Card) []int64 {
	out := make([]int64, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSelect(t *testing.T) {
	items := sampleItems()

	tests := []struct {
		filter string
		want   int
	}{
		{model.FilterAll, 4},
		{"food", 2},
		{"tools", 1},
		{"household", 0},
		{"garden", 0},
	}

	for _, tt := range tests {
		got := Select(items, tt.filter)
		if len(got) != tt.want {
			t.Errorf("Select(%q): expected %d items, got %d", tt.filter, tt.want, len(got))
		}
		for _, it := range got {
			if tt.filter != model.FilterAll && string(it.Category) != tt.filter {
				t.Errorf("Select(%q) returned category %q", tt.filter, it.Category)
			}
		}
	}
}

func TestCardsFoodScenario(t *testing.T) {
	cards := Cards(sampleItems(), "food", today)
	if !equalIDs(ids(cards), []int64{1, 4}) {
		t.Errorf("expected food cards [1 4], got %v", ids(cards))
	}
}

func TestCardsSortNewestFirstStable(t *testing.T) {
	items := sampleItems()
	// A same-day item inserted at the front stays ahead of older same-day items.
	items = append([]model.Item{{ID: 5, Title: "Umbrella", Category: "household", Posted: date("2025-01-15")}}, items...)

	cards := Cards(items, model.FilterAll, today)
	if !equalIDs(ids(cards), []int64{5, 1, 4, 2, 3}) {
		t.Errorf("unexpected order %v", ids(cards))
	}

	// The input slice is left in board order.
	if items[0].ID != 5 || items[1].ID != 1 || items[4].ID != 4 {
		t.Errorf("expected input order preserved, got %d %d %d", items[0].ID, items[1].ID, items[4].ID)
	}
}

func TestCardsSortByPostedDate(t *testing.T) {
	items := []model.Item{
		{ID: 1, Category: "food", Posted: date("2025-01-10")},
		{ID: 2, Category: "food", Posted: date("2025-01-12")},
		{ID: 3, Category: "food", Posted: date("2025-01-11")},
	}
	cards := Cards(items, model.FilterAll, today)
	if !equalIDs(ids(cards), []int64{2, 3, 1}) {
		t.Errorf("unexpected order %v", ids(cards))
	}
}

func TestCardFields(t *testing.T) {
	cards := Cards(sampleItems(), model.FilterAll, today)
	byID := map[int64]Card{}
	for _, c := range cards {
		byID[c.ID] = c
	}

	tomatoes := byID[1]
	if tomatoes.Icon != "🍎" || tomatoes.Category != "food" {
		t.Errorf("unexpected category display %q %q", tomatoes.Icon, tomatoes.Category)
	}
	if tomatoes.Expires != "Jan 20" || tomatoes.Urgent {
		t.Errorf("expected non-urgent Jan 20 expiry, got %q urgent=%v", tomatoes.Expires, tomatoes.Urgent)
	}
	if tomatoes.Posted != "Jan 15" {
		t.Errorf("expected posted 'Jan 15', got %q", tomatoes.Posted)
	}

	party := byID[4]
	if !party.Urgent {
		t.Error("expected same-day expiry to be urgent")
	}

	books := byID[2]
	if books.Expires != "" || books.Urgent {
		t.Errorf("expected no expiry badge, got %q urgent=%v", books.Expires, books.Urgent)
	}
}

func TestCardUnknownCategoryIcon(t *testing.T) {
	items := []model.Item{{ID: 9, Category: "garden", Posted: today}}
	cards := Cards(items, model.FilterAll, today)
	if cards[0].Icon != "📦" {
		t.Errorf("expected fallback icon, got %q", cards[0].Icon)
	}
}

func TestGridEmptyPlaceholder(t *testing.T) {
	r := newTestRenderer(t)

	for _, items := range [][]model.Item{nil, sampleItems()} {
		out, err := r.Grid(items, "household", today)
		if err != nil {
			t.Fatalf("Grid: %v", err)
		}
		html := string(out)
		if strings.Count(html, `class="no-items"`) != 1 {
			t.Errorf("expected exactly one placeholder, got %q", html)
		}
		if strings.Contains(html, "item-card") {
			t.Errorf("expected no cards, got %q", html)
		}
		if !strings.Contains(html, NoItemsMessage) {
			t.Errorf("expected placeholder message, got %q", html)
		}
	}
}

func TestGridCards(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Grid(sampleItems(), model.FilterAll, today)
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	html := string(out)

	if n := strings.Count(html, `class="item-card"`); n != 4 {
		t.Errorf("expected 4 cards, got %d", n)
	}
	if strings.Contains(html, "no-items") {
		t.Error("expected no placeholder")
	}
	if n := strings.Count(html, `class="item-expires urgent"`); n != 1 {
		t.Errorf("expected 1 urgent badge, got %d", n)
	}
	if n := strings.Count(html, `class="item-expires`); n != 2 {
		t.Errorf("expected 2 expiry badges, got %d", n)
	}
	if !strings.Contains(html, "Power Drill &amp; Tool Set") {
		t.Error("expected escaped title")
	}
	if !strings.Contains(html, `action="/items/3/contact"`) {
		t.Error("expected contact form for item 3")
	}
	if strings.Index(html, "Fresh Homegrown Tomatoes") > strings.Index(html, "Complete Harry Potter") {
		t.Error("expected newer items first")
	}
}

func TestGridEscapesMarkup(t *testing.T) {
	r := newTestRenderer(t)

	items := []model.Item{{ID: 1, Title: "<script>alert(1)</script>", Category: "other", Posted: today}}
	out, err := r.Grid(items, model.FilterAll, today)
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Errorf("expected title to be escaped, got %q", out)
	}
}

func TestStats(t *testing.T) {
	if got := Stats(nil); got != (model.Stats{}) {
		t.Errorf("expected zero stats, got %+v", got)
	}
	got := Stats(sampleItems())
	want := model.Stats{ItemCount: 4, PoundsSaved: 9, NeighborsHelped: 7}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
