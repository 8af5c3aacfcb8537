package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/slotswapper-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig, writes to w and
// installs it as the slog default.
//
// Format "json" produces structured output for production; "text" is
// human-readable and includes source locations. Level is one of debug, info,
// warn, error (case-insensitive) and defaults to info.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With(slog.String("app", "slotswapper"))
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
