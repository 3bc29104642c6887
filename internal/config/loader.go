package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-ladders/internal/registry"
)

// LoadLayout loads a board layout by name.
// Search order: customPath -> ~/.ladders/layouts/<name>.yaml -> ./layouts/<name>.yaml -> built-in
func LoadLayout(name, customPath string) (registry.Layout, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return registry.Layout{}, fmt.Errorf("failed to read layout %s: %w", customPath, err)
		}
		l, err := ParseLayout(data)
		if err != nil {
			return registry.Layout{}, fmt.Errorf("failed to parse layout %s: %w", customPath, err)
		}
		return l, nil
	}

	if name == "" {
		name = DefaultLayout
	}
	filename := name + ".yaml"

	// Try user layout directory
	if userPath := userConfigPath("layouts", filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if l, err := ParseLayout(data); err == nil {
				return l, nil
			}
		}
	}

	// Try local layouts directory
	if data, err := os.ReadFile(filepath.Join("layouts", filename)); err == nil {
		if l, err := ParseLayout(data); err == nil {
			return l, nil
		}
	}

	// Use built-in layout
	return registry.Create(name)
}

// userConfigPath returns a path under ~/.ladders, or empty if home is unavailable.
func userConfigPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, ".ladders"}, elem...)...)
}

// DefaultLayoutYAML returns the YAML of a built-in layout, for users who want
// a starting point for their own file.
func DefaultLayoutYAML(name string) ([]byte, error) {
	data, ok := embeddedLayout(name)
	if !ok {
		return nil, fmt.Errorf("no built-in layout %q", name)
	}
	return data, nil
}
