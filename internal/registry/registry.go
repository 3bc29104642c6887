// Package registry provides a global registry of named board layouts.
// Layouts register themselves in init() functions, allowing the CLI and
// the setup screen to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/dice"
)

// Layout is a complete board configuration.
type Layout struct {
	ID          string
	Title       string
	Description string
	DiceSides   int
	Snakes      map[int]int // origin -> destination
	Ladders     map[int]int
}

// Board builds a fresh board for this layout.
func (l Layout) Board() (*board.Board, error) {
	b, err := board.New(l.Snakes, l.Ladders)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", l.ID, err)
	}
	return b, nil
}

// Sides returns the die face count, defaulting to six.
func (l Layout) Sides() int {
	if l.DiceSides < 1 {
		return dice.DefaultSides
	}
	return l.DiceSides
}

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	ID    string
	Title string
}

// Factory is a function that returns a layout definition.
type Factory func() Layout

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a layout factory to the registry.
// Typically called from an init() function.
// Panics if a layout with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title
}

// List returns information about all registered layouts, sorted by ID.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(factories))
	for id := range factories {
		result = append(result, LayoutInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the layout registered under id.
func Create(id string) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return Layout{}, fmt.Errorf("registry: unknown layout %q", id)
	}

	return f(), nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
