// Package logging holds the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Config controls where diagnostic logs go.
type Config struct {
	Debug  bool
	Writer io.Writer // defaults to os.Stderr
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs the global logger. Without Debug, logs are discarded so that
// the user only sees cargo output and error lines.
func Setup(cfg Config) *slog.Logger {
	l := discard()
	if cfg.Debug {
		w := cfg.Writer
		if w == nil {
			w = os.Stderr
		}
		l = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized")
	return l
}

// L returns the global logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
