package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Memory is the DSN of the board's process-local database.
const Memory = ":memory:"

// Open opens a SQLite database connection and configures pragmas.
//
// The pool is pinned to a single connection: every connection to ":memory:"
// gets its own empty database, and a single connection also serializes all
// access to the board.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=OFF",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	return db, nil
}
