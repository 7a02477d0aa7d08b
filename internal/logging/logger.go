package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"rickorty/internal/config"
)

// Init installs the global slog logger for the dev server.
func Init(cfg *config.Config) {
	slog.SetDefault(New(os.Stdout, cfg))
}

// New builds a logger writing to w: JSON in production, text otherwise,
// at the level from LOG_LEVEL.
func New(w io.Writer, cfg *config.Config) *slog.Logger {
	production := strings.EqualFold(cfg.Environment, "production")
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel, production)}

	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("service", "rickorty")
}

// ParseLevel maps a LOG_LEVEL value to a slog level.
// Empty or unknown values fall back to Info in production and Debug elsewhere.
func ParseLevel(value string, production bool) slog.Level {
	var level slog.Level
	if value != "" && level.UnmarshalText([]byte(value)) == nil {
		return level
	}
	if production {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// WithRequest returns a logger with request context fields attached.
func WithRequest(requestID, method, path string) *slog.Logger {
	return slog.With(
		"request_id", requestID,
		"method", method,
		"path", path,
	)
}
