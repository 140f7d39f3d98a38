// Package logging provides the package-level zerolog logger used across the
// module, following the same "one global Logger(), .With() per call site"
// convention as gnark's own internal/logger package.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger zerolog.Logger = zerolog.New(io.Discard).Level(zerolog.Disabled)
)

// Logger returns the current global logger. Library code (pkg/..., internal/
// other than this package and cmd/) should only ever call this to attach
// structured fields via .With(); it defaults to discarding all output so
// importing this module never produces unsolicited output.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetConsole switches the global logger to a human-readable console writer
// at the given level - called once by cmd/mahjong-shuffle at startup.
func SetConsole(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}

// SetOutput redirects the global logger's writer, preserving its level -
// used by tests that want to capture log output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Output(w)
}
