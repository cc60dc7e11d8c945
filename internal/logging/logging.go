// Package logging builds the zap logger. The TUI owns the terminal, so log
// output always goes to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/abordi-ai/abordi/internal/config"
)

// New returns a JSON file logger for cfg, or a no-op logger when logging
// is disabled.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.Disabled() {
		return zap.NewNop(), nil
	}

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	atom, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = atom
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	zc.Sampling = nil

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
