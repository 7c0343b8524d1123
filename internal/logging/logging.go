// Package logging wires up structured logging for the render driver and
// CLI boundary. The trace core itself never logs — rendering a pixel is a
// pure, lock-free computation (see the concurrency design notes) — this
// package is only ever touched before and after a frame.
package logging

import "go.uber.org/zap"

// New builds a production zap logger (a development one when verbose is
// set), or a no-op logger if construction
// fails (logging must never be the reason a render fails).
func New(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
