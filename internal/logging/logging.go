// Package logging builds the application logger.
package logging

import (
	"go.uber.org/zap"
)

// New creates a production logger writing to the given file. The TUI
// owns the terminal, so nothing is ever logged to stdout or stderr.
func New(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
