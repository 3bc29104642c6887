package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ladders/internal/core"
)

// newLogger creates a timestamped logger writing to w at the given level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ladders",
		Level:           lvl,
	}), nil
}

// fileLogger returns a logger for use while the TUI owns the terminal.
// Output goes to path; if it cannot be opened, logging is discarded.
func fileLogger(path string) (*log.Logger, func()) {
	path = core.ExpandHome(path)
	if path == "" {
		return log.New(io.Discard), func() {}
	}
	if err := core.EnsureDir(path); err != nil {
		logger.Warn("cannot create log directory", "path", path, "err", err)
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("cannot open log file", "path", path, "err", err)
		return log.New(io.Discard), func() {}
	}

	l, err := newLogger(f, settings.LogLevel)
	if err != nil {
		f.Close()
		return log.New(io.Discard), func() {}
	}
	return l, func() { f.Close() }
}
