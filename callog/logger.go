// Package callog provides the package-level structured logger used by
// the generator and the scheduler.
package callog

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	globalLogger zerolog.Logger
	once         sync.Once
	overridden   bool
	mutex        sync.RWMutex
)

// LOGGER returns the shared calendario logger, initializing it on first
// use from the CALENDARIO_LOG_LEVEL environment variable (default
// "info").
func LOGGER() *zerolog.Logger {
	once.Do(func() {
		mutex.Lock()
		defer mutex.Unlock()
		if overridden {
			return
		}
		zerolog.TimeFieldFormat = time.RFC3339Nano

		level := zerolog.InfoLevel
		if raw := strings.TrimSpace(os.Getenv("CALENDARIO_LOG_LEVEL")); raw != "" {
			if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
				level = parsed
			}
		}

		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		globalLogger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	})
	mutex.RLock()
	defer mutex.RUnlock()
	return &globalLogger
}

// SetLogger overrides the global logger, e.g. so a caller can redirect
// output or attach additional fields. Safe to call before or after the
// first LOGGER() call.
func SetLogger(logger zerolog.Logger) {
	mutex.Lock()
	defer mutex.Unlock()
	overridden = true
	globalLogger = logger
}
