package savegame

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

// Manager ties a slot to the record codec.
type Manager struct {
	slot   Slot
	logger *log.Logger
}

// NewManager creates a manager. A nil logger discards output.
func NewManager(slot Slot, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{slot: slot, logger: logger}
}

// Slot returns the underlying slot.
func (m *Manager) Slot() Slot {
	return m.slot
}

// SaveGame writes g to the slot, replacing any previous save.
func (m *Manager) SaveGame(ctx context.Context, g *engine.Game) error {
	data, err := Encode(Save(g))
	if err != nil {
		return err
	}
	if err := m.slot.Write(ctx, data); err != nil {
		m.logger.Warn("save failed", "slot", m.slot.Location(), "err", err)
		return err
	}

	m.logger.Info("game saved", "slot", m.slot.Location(), "turn", g.Turn(), "bytes", len(data))
	return nil
}

// Peek reads and decodes the slot without building a game.
func (m *Manager) Peek(ctx context.Context) (Record, error) {
	data, err := m.slot.Read(ctx)
	if err != nil {
		return Record{}, err
	}
	return Decode(data)
}

// LoadGame reads the slot and rebuilds the game onto b.
// On any error b is untouched and the caller keeps its current game.
func (m *Manager) LoadGame(ctx context.Context, b *board.Board, d dice.Roller, opts ...engine.Option) (*engine.Game, error) {
	rec, err := m.Peek(ctx)
	if err != nil {
		m.logger.Warn("load failed", "slot", m.slot.Location(), "err", err)
		return nil, err
	}

	g, err := Load(rec, b, d, opts...)
	if err != nil {
		m.logger.Warn("load failed", "slot", m.slot.Location(), "err", err)
		return nil, err
	}

	m.logger.Info("game loaded", "slot", m.slot.Location(), "turn", g.Turn(), "players", len(g.Players()))
	return g, nil
}

// Clear deletes the saved game, if any.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.slot.Delete(ctx); err != nil {
		m.logger.Warn("clear failed", "slot", m.slot.Location(), "err", err)
		return err
	}

	m.logger.Info("save cleared", "slot", m.slot.Location())
	return nil
}

// OpenSlot builds the slot selected by settings. The returned closer
// releases backend connections and is never nil.
func OpenSlot(ctx context.Context, cfg config.Save, store *storage.Store) (Slot, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileSlot(cfg.Path), noop, nil
	case config.BackendSQLite:
		if store == nil {
			return nil, noop, fmt.Errorf("savegame: sqlite backend needs an open store")
		}
		return NewSQLSlot(store, DefaultSlotName), noop, nil
	case config.BackendRedis:
		slot, err := DialRedisSlot(ctx, cfg.RedisAddr, cfg.RedisKey)
		if err != nil {
			return nil, noop, err
		}
		return slot, slot.Close, nil
	default:
		return nil, noop, fmt.Errorf("savegame: unknown backend %q", cfg.Backend)
	}
}
