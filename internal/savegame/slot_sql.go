package savegame

import (
	"context"
	"errors"

	"github.com/vovakirdan/tui-ladders/internal/storage"
)

// DefaultSlotName is the row or key used for the single save.
const DefaultSlotName = "default"

// SQLSlot keeps the save in the SQLite store's save_slot table.
type SQLSlot struct {
	store *storage.Store
	name  string
}

// NewSQLSlot creates a slot backed by store.
func NewSQLSlot(store *storage.Store, name string) *SQLSlot {
	if name == "" {
		name = DefaultSlotName
	}
	return &SQLSlot{store: store, name: name}
}

func (s *SQLSlot) Write(ctx context.Context, data []byte) error {
	return s.store.WriteSlot(ctx, s.name, data)
}

func (s *SQLSlot) Read(ctx context.Context) ([]byte, error) {
	data, _, err := s.store.ReadSlot(ctx, s.name)
	if errors.Is(err, storage.ErrNoSlot) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *SQLSlot) Exists(ctx context.Context) (bool, error) {
	_, err := s.Read(ctx)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *SQLSlot) Delete(ctx context.Context) error {
	return s.store.DeleteSlot(ctx, s.name)
}

func (s *SQLSlot) Location() string {
	return "sqlite:" + s.name
}
