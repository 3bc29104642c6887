package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoSlot is returned when a named save slot has never been written.
var ErrNoSlot = errors.New("storage: save slot is empty")

// WriteSlot stores data under name, replacing any previous contents.
func (s *Store) WriteSlot(ctx context.Context, name string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO save_slot (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write slot %s: %w", name, err)
	}
	return nil
}

// ReadSlot returns the contents of a save slot and when it was written.
func (s *Store) ReadSlot(ctx context.Context, name string) ([]byte, time.Time, error) {
	var data []byte
	var updatedAt any

	err := s.db.QueryRowContext(ctx,
		"SELECT data, updated_at FROM save_slot WHERE name = ?",
		name,
	).Scan(&data, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrNoSlot
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("storage: cannot read slot %s: %w", name, err)
	}

	return data, parseTime(updatedAt), nil
}

// DeleteSlot removes a save slot. Deleting an empty slot is not an error.
func (s *Store) DeleteSlot(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM save_slot WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete slot %s: %w", name, err)
	}
	return nil
}
