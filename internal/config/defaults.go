package config

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-ladders/internal/registry"
)

// DefaultLayout is the layout used when none is configured.
const DefaultLayout = "classic"

//go:embed defaults/*.yaml
var defaultLayouts embed.FS

func init() {
	entries, err := defaultLayouts.ReadDir("defaults")
	if err != nil {
		panic(fmt.Sprintf("config: cannot read embedded layouts: %v", err))
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := defaultLayouts.ReadFile(path.Join("defaults", name))
		if err != nil {
			panic(fmt.Sprintf("config: cannot read %s: %v", name, err))
		}
		l, err := ParseLayout(data)
		if err != nil {
			panic(fmt.Sprintf("config: embedded layout %s: %v", name, err))
		}
		registry.Register(l.ID, func() registry.Layout { return cloneLayout(l) })
	}
}

// embeddedLayout returns the raw YAML of a built-in layout.
func embeddedLayout(name string) ([]byte, bool) {
	data, err := defaultLayouts.ReadFile(path.Join("defaults", strings.ToLower(name)+".yaml"))
	if err != nil {
		return nil, false
	}
	return data, true
}

// cloneLayout copies link maps so callers cannot mutate a registered layout.
func cloneLayout(l registry.Layout) registry.Layout {
	out := l
	out.Snakes = make(map[int]int, len(l.Snakes))
	for k, v := range l.Snakes {
		out.Snakes[k] = v
	}
	out.Ladders = make(map[int]int, len(l.Ladders))
	for k, v := range l.Ladders {
		out.Ladders[k] = v
	}
	return out
}
