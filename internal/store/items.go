package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/erazemk/ecoshare/internal/model"
)

// Board is the in-memory item store. It owns the item sequence and the id
// counter; items are only ever added, at the front.
type Board struct {
	db  *sql.DB
	now func() time.Time
}

// NewBoard returns a board backed by db. now supplies the clock used to
// stamp newly shared items; nil means time.Now.
func NewBoard(db *sql.DB, now func() time.Time) *Board {
	if now == nil {
		now = time.Now
	}
	return &Board{db: db, now: now}
}

// Today returns the board's current calendar date.
func (b *Board) Today() model.Date {
	return model.Today(b.now())
}

const itemColumns = `id, title, description, category, location, contact, expires, posted, photo_mime IS NOT NULL`

// Add shares a new item: it gets the next id, is posted today, and goes to
// the front of the board. The draft is stored as given.
func (b *Board) Add(ctx context.Context, draft model.Draft) (*model.Item, error) {
	var expires sql.NullString
	if draft.Expires != nil {
		expires = sql.NullString{String: draft.Expires.String(), Valid: true}
	}

	result, err := b.db.ExecContext(ctx,
		`INSERT INTO items (seq, title, description, category, location, contact, expires, posted)
		 VALUES ((SELECT COALESCE(MAX(seq), 0) + 1 FROM items), ?, ?, ?, ?, ?, ?, ?)`,
		draft.Title, draft.Description, string(draft.Category), draft.Location, draft.Contact,
		expires, b.Today().String(),
	)
	if err != nil {
		return nil, fmt.Errorf("adding item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return b.Get(ctx, id)
}

// Get returns an item by ID, or nil if there is none.
func (b *Board) Get(ctx context.Context, id int64) (*model.Item, error) {
	row := b.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// All returns every item in board order, front first.
func (b *Board) All(ctx context.Context) ([]model.Item, error) {
	rows, err := b.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY seq DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// Filtered returns the items whose category equals filter exactly, in board
// order. The "all" filter returns every item.
func (b *Board) Filtered(ctx context.Context, filter string) ([]model.Item, error) {
	if filter == model.FilterAll {
		return b.All(ctx)
	}

	rows, err := b.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE category = ? ORDER BY seq DESC`, filter,
	)
	if err != nil {
		return nil, fmt.Errorf("filtering items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// Count returns the number of items on the board.
func (b *Board) Count(ctx context.Context) (int, error) {
	var n int
	if err := b.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return n, nil
}

// Stats returns the board statistics.
func (b *Board) Stats(ctx context.Context) (model.Stats, error) {
	n, err := b.Count(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	return model.NewStats(n), nil
}

// Categories returns the distinct category values present on the board, in
// order of first appearance from the front.
func (b *Board) Categories(ctx context.Context) ([]model.Category, error) {
	rows, err := b.db.QueryContext(ctx,
		`SELECT category FROM items GROUP BY category ORDER BY MAX(seq) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, model.Category(c))
	}
	return categories, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*model.Item, error) {
	var (
		item     model.Item
		category string
		expires  sql.NullString
		posted   string
	)
	if err := s.Scan(&item.ID, &item.Title, &item.Description, &category, &item.Location,
		&item.Contact, &expires, &posted, &item.HasPhoto); err != nil {
		return nil, err
	}

	item.Category = model.Category(category)
	if expires.Valid {
		item.Expires = model.ParseOptionalDate(expires.String)
	}
	p, err := model.ParseDate(posted)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", item.ID, err)
	}
	item.Posted = p
	return &item, nil
}

func scanItems(rows *sql.Rows) ([]model.Item, error) {
	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
