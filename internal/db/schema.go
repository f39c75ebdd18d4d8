package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
//
// seq orders the board: the item with the highest seq is at the front.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    seq         INTEGER NOT NULL UNIQUE,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category    TEXT NOT NULL,
    location    TEXT NOT NULL DEFAULT '',
    contact     TEXT NOT NULL DEFAULT '',
    expires     TEXT,
    posted      TEXT NOT NULL,
    photo       BLOB,
    photo_mime  TEXT
);

CREATE INDEX IF NOT EXISTS idx_items_category ON items(category, seq);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
