package savegame

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-ladders/internal/core"
)

// DefaultPath is where the file slot lives unless configured otherwise.
const DefaultPath = "~/.ladders/savegame.json"

// Slot stores the raw bytes of the single saved game.
type Slot interface {
	Write(ctx context.Context, data []byte) error
	// Read returns ErrNotFound when nothing has been saved.
	Read(ctx context.Context) ([]byte, error)
	Exists(ctx context.Context) (bool, error)
	// Delete empties the slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context) error
	// Location describes where the slot lives, for messages.
	Location() string
}

// FileSlot keeps the save in a JSON file.
type FileSlot struct {
	path string
}

// NewFileSlot creates a file slot. A leading ~ is expanded.
func NewFileSlot(path string) *FileSlot {
	if path == "" {
		path = DefaultPath
	}
	return &FileSlot{path: core.ExpandHome(path)}
}

// Write replaces the file atomically via a temp file and rename.
func (s *FileSlot) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("savegame: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".savegame-*.tmp")
	if err != nil {
		return fmt.Errorf("savegame: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("savegame: cannot write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("savegame: cannot close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("savegame: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// Read returns the file contents.
func (s *FileSlot) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("savegame: cannot read %s: %w", s.path, err)
	}
	return data, nil
}

// Exists reports whether the save file is present.
func (s *FileSlot) Exists(_ context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("savegame: cannot stat %s: %w", s.path, err)
	}
	return true, nil
}

// Delete removes the save file.
func (s *FileSlot) Delete(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("savegame: cannot remove %s: %w", s.path, err)
	}
	return nil
}

// Location returns the file path.
func (s *FileSlot) Location() string {
	return s.path
}
