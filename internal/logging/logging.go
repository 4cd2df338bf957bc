// Package logging configures the zap logger. Everything logs to a file:
// the TUI owns the terminal, so stdout must stay clean.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger writing to the given file,
// creating its directory if needed.
func New(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// NewOrNop returns a file logger, or a no-op logger when the file
// cannot be opened. Logging must never keep the app from starting.
func NewOrNop(path string) *zap.Logger {
	logger, err := New(path)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
