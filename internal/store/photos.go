package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SetPhoto attaches a photo to an item.
func (b *Board) SetPhoto(ctx context.Context, id int64, data []byte, mime string) error {
	_, err := b.db.ExecContext(ctx,
		`UPDATE items SET photo = ?, photo_mime = ? WHERE id = ?`,
		data, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item photo: %w", err)
	}
	return nil
}

// Photo returns an item's photo and MIME type. data is nil when the item has
// no photo.
func (b *Board) Photo(ctx context.Context, id int64) ([]byte, string, error) {
	var data []byte
	var mime sql.NullString
	err := b.db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM items WHERE id = ?`, id,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item photo: %w", err)
	}
	return data, mime.String, nil
}
