package store

import (
	"context"
	"testing"
	"time"

	"github.com/erazemk/ecoshare/internal/db"
	"github.com/erazemk/ecoshare/internal/model"
)

var testNow = time.Date(2025, 1, 16, 14, 30, 0, 0, time.UTC)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	return NewBoard(db.NewSeededTestDB(t), func() time.Time { return testNow })
}

func TestSeededBoard(t *testing.T) {
	board := newTestBoard(t)
	ctx := context.Background()

	items, err := board.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	for i, want := range []int64{1, 2, 3, 4} {
		if items[i].ID != want {
			t.Errorf("index %d: expected id %d, got %d", i, want, items[i].ID)
		}
	}
	if items[1].Expires != nil {
		t.Errorf("expected seed item 2 not to expire, got %v", items[1].Expires)
	}
	if items[0].Expires == nil || items[0].Expires.String() != "2025-01-20" {
		t.Errorf("expected seed item 1 to expire 2025-01-20, got %v", items[0].Expires)
	}
}

func TestAddItem(t *testing.T) {
	board := newTestBoard(t)
	ctx := context.Background()

	before, _ := board.All(ctx)

	item, err := board.Add(ctx, model.Draft{
		Title:    "Spare Umbrella",
		Category: model.CategoryHousehold,
		Contact:  "555-0100",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if item.ID != 5 {
		t.Errorf("expected id 5, got %d", item.ID)
	}
	if item.Posted.String() != "2025-01-16" {
		t.Errorf("expected posted today, got %s", item.Posted)
	}
	if item.Expires != nil {
		t.Errorf("expected no expiry, got %v", item.Expires)
	}

	after, _ := board.All(ctx)
	if len(after) != len(before)+1 {
		t.Errorf("expected %d items, got %d", len(before)+1, len(after))
	}
	if after[0].ID != item.ID {
		t.Errorf("expected new item at index 0, got id %d", after[0].ID)
	}
	for _, old := range before {
		if item.ID <= old.ID {
			t.Errorf("expected new id %d to exceed %d", item.ID, old.ID)
		}
	}
}

func TestAddAcceptsAnything(t *testing.T) {
	board := newTestBoard(t)
	ctx := context.Background()

	item, err := board.Add(ctx, model.Draft{Category: "garden"})
	if err != nil {
		t.Fatalf("Add with empty title: %v", err)
	}
	if item.Title != "" || item.Category != "garden" {
		t.Errorf("expected draft stored as given, got %+v", item)
	}
}

func TestAddIDsIncrease(t *testing.T) {
	board := newTestBoard(t)
	ctx := context.Background()

	var last int64
	for range 3 {
		item, err := board.Add(ctx, model.Draft{Title: "x", Category: model.CategoryOther})
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if item.ID <= last {
			t.Errorf("expected id greater than %d, got %d", last, item.ID)
		}
		last = item.ID
	}

	items, _ := board.All(ctx)
	if items[0].ID != last {
		t.Errorf("expected newest item at the front, got id %d", items[0].ID)
	}
}

func TestFiltered(t *testing.T) {
	board := newTestBoard(t)
	ctx := context.Background()

	tests := []struct {
		filter string
		want   []int64
	}{
		{model.FilterAll, []int64{1, 2, 3, 4}},
		{"food", []int64{1, 4}},
		{"books", []int64{2}},
		{"household", nil},
		{"Food", nil},
	}

	for _, tt := range tests {
		items, err := board.Filtered(ctx, tt.filter)
		if err != nil {
			t.Fatalf("Filtered(%q): %v", tt.filter, err)
		}
		if len(items) != len(tt.want) {
			t.Errorf("Filtered(%q): expected %d items, got %d", tt.filter, len(tt.want), len(items))
			continue
		}
		for i, id := range tt.want {
			if items[i].ID != id {
				t.Errorf("Filtered(%q)[%d]: expected id %d, got %d", tt.filter, i, id, items[i].ID)
			}
		}
	}
}

func TestStatsAndCategories(t *testing.T) {
	board := newTestBoard(t)
	ctx := context.Background()

	stats, err := board.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats != model.NewStats(4) {
		t.Errorf("expected stats for 4 items, got %+v", stats)
	}

	board.Add(ctx, model.Draft{Title: "Seeds", Category: "garden"})

	categories, err := board.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	want := []model.Category{"garden", "food", "books", "tools"}
	if len(categories) != len(want) {
		t.Fatalf("expected %v, got %v", want, categories)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("index %d: expected %q, got %q", i, want[i], categories[i])
		}
	}
}

func TestGetMissingItem(t *testing.T) {
	board := newTestBoard(t)

	item, err := board.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if item != nil {
		t.Errorf("expected nil item, got %+v", item)
	}
}

func TestItemPhoto(t *testing.T) {
	board := newTestBoard(t)
	ctx := context.Background()

	if err := board.SetPhoto(ctx, 2, []byte("fake image data"), "image/jpeg"); err != nil {
		t.Fatalf("SetPhoto: %v", err)
	}

	data, mime, err := board.Photo(ctx, 2)
	if err != nil {
		t.Fatalf("Photo: %v", err)
	}
	if string(data) != "fake image data" {
		t.Errorf("expected image data, got %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}

	item, _ := board.Get(ctx, 2)
	if !item.HasPhoto {
		t.Error("expected item to report a photo")
	}
	other, _ := board.Get(ctx, 3)
	if other.HasPhoto {
		t.Error("expected item 3 to have no photo")
	}
}
