package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/customtrack-backend/internal/config"
)

// appName tags every log line so shared collectors can route them.
const appName = "customtrack"

// NewLogger builds the process logger from cfg, writes to stderr and
// installs it as the slog default.
//
// Format "json" is meant for production. Anything else selects the text
// handler with source locations. Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	isJSON := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !isJSON,
	}

	var handler slog.Handler
	if isJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", appName))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
