// Package logging builds the zap logger. The dashboard owns the terminal, so
// logs only ever go to a file; without one the logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the log file and level.
type Options struct {
	File  string
	Debug bool
}

// New returns a JSON file logger, or zap.NewNop when File is empty.
func New(opt Options) (*zap.Logger, error) {
	if opt.File == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(opt.File), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{opt.File}
	cfg.ErrorOutputPaths = []string{opt.File}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if opt.Debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}
