// Package logger configures the process-wide structured logger.
// Logs go to stderr so stdout stays reserved for command output.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Config controls logger output.
type Config struct {
	Writer io.Writer // Defaults to os.Stderr
	Debug  bool
	Format string // "text" (default) or "json"
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup builds a logger from cfg and installs it as the package and slog default.
func Setup(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelWarn
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	l := slog.New(h)

	mu.Lock()
	global = l
	mu.Unlock()
	slog.SetDefault(l)

	l.Debug("logger.initialized", "format", formatName(cfg.Format), "debug", cfg.Debug)
	return l
}

// L returns the current logger. Before Setup it discards everything.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func formatName(f string) string {
	if f == "json" {
		return "json"
	}
	return "text"
}
