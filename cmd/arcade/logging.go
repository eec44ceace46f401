package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// newLogger builds the logger for a command. Interactive play owns the
// terminal, so it logs to the configured file instead of stderr.
// The returned close function is never nil.
func newLogger(cfg config.LogConfig, interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, func() {}, fmt.Errorf("invalid log level: %w", err)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	}

	if !interactive {
		return log.NewWithOptions(os.Stderr, opts), func() {}, nil
	}
	if cfg.File == "" {
		return log.NewWithOptions(io.Discard, opts), func() {}, nil
	}

	path, err := config.ExpandPath(cfg.File)
	if err != nil {
		return nil, func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}

	opts.Formatter = log.LogfmtFormatter
	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}
