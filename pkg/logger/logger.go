package logger

import (
	"io"
	"log/slog"
	"strings"
)

type Options struct {
	Service string
	Env     string
	Level   string

	// W receives the JSON log stream. The TUI owns stdout, so callers
	// usually pass a log file or io.Discard.
	W io.Writer
}

func New(opts Options) *slog.Logger {
	w := opts.W
	if w == nil {
		w = io.Discard
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	})

	base := slog.New(h).With(
		"service", opts.Service,
		"env", opts.Env,
	)

	slog.SetDefault(base)
	return base
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
