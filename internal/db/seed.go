package db

import (
	"context"
	"database/sql"
	"fmt"
)

type seedItem struct {
	id          int64
	title       string
	description string
	category    string
	location    string
	contact     string
	expires     sql.NullString
	posted      string
}

// seedItems is the sample board, front first.
var seedItems = []seedItem{
	{
		id:          1,
		title:       "Fresh Homegrown Tomatoes",
		description: "Just picked from my garden! Too many for my family to eat.",
		category:    "food",
		location:    "Oak Street",
		contact:     "sarah.garden@email.com",
		expires:     sql.NullString{String: "2025-01-20", Valid: true},
		posted:      "2025-01-15",
	},
	{
		id:          2,
		title:       "Complete Harry Potter Book Set",
		description: "My kids outgrew these. All books in excellent condition.",
		category:    "books",
		location:    "Maple Avenue",
		contact:     "bookworm42@email.com",
		posted:      "2025-01-14",
	},
	{
		id:          3,
		title:       "Power Drill & Tool Set",
		description: "Available for borrowing. Great for small home projects.",
		category:    "tools",
		location:    "Pine Street",
		contact:     "handyman.joe@email.com",
		posted:      "2025-01-13",
	},
	{
		id:          4,
		title:       "Leftover Party Food",
		description: "Sandwiches, salads, and snacks from office party. Still fresh!",
		category:    "food",
		location:    "Downtown",
		contact:     "office.manager@email.com",
		expires:     sql.NullString{String: "2025-01-16", Valid: true},
		posted:      "2025-01-15",
	},
}

// SeedCount is the number of sample items inserted by Seed.
var SeedCount = len(seedItems)

// Seed inserts the sample board. The first sample item ends up at the front,
// and the next assigned id is SeedCount+1.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed: %w", err)
	}
	defer tx.Rollback()

	for i := len(seedItems) - 1; i >= 0; i-- {
		it := seedItems[i]
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (id, seq, title, description, category, location, contact, expires, posted)
			 VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM items), ?, ?, ?, ?, ?, ?, ?)`,
			it.id, it.title, it.description, it.category, it.location, it.contact, it.expires, it.posted,
		)
		if err != nil {
			return fmt.Errorf("seeding item %d: %w", it.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}
