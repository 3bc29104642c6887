// Package config provides YAML board layout loading and application
// settings for the ladders game.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-ladders/internal/registry"
)

// LayoutFile is the on-disk YAML form of a board layout.
type LayoutFile struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	DiceSides   int        `yaml:"dice_sides"`
	Snakes      []LinkSpec `yaml:"snakes"`
	Ladders     []LinkSpec `yaml:"ladders"`
}

// LinkSpec is one snake or ladder in a layout file.
type LinkSpec struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// ParseLayout decodes and validates a YAML layout.
func ParseLayout(data []byte) (registry.Layout, error) {
	var lf LayoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return registry.Layout{}, fmt.Errorf("invalid layout yaml: %w", err)
	}
	return lf.Layout()
}

// Layout converts the file form to a registry layout. Duplicate origins and
// links that fail board validation are rejected.
func (lf LayoutFile) Layout() (registry.Layout, error) {
	id := strings.TrimSpace(lf.ID)
	if id == "" {
		return registry.Layout{}, fmt.Errorf("layout: missing id")
	}

	title := lf.Name
	if title == "" {
		title = id
	}

	l := registry.Layout{
		ID:          id,
		Title:       title,
		Description: lf.Description,
		DiceSides:   lf.DiceSides,
		Snakes:      make(map[int]int, len(lf.Snakes)),
		Ladders:     make(map[int]int, len(lf.Ladders)),
	}

	for _, s := range lf.Snakes {
		if _, dup := l.Snakes[s.From]; dup {
			return registry.Layout{}, fmt.Errorf("layout %q: duplicate snake at %d", id, s.From)
		}
		l.Snakes[s.From] = s.To
	}
	for _, s := range lf.Ladders {
		if _, dup := l.Ladders[s.From]; dup {
			return registry.Layout{}, fmt.Errorf("layout %q: duplicate ladder at %d", id, s.From)
		}
		l.Ladders[s.From] = s.To
	}

	// Fail at load time rather than at game start
	if _, err := l.Board(); err != nil {
		return registry.Layout{}, err
	}

	return l, nil
}
