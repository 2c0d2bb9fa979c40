package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatZerolog = "zerolog"
)

// New builds a Logger writing to w at the given level ("debug", "info",
// "warn", "error"). format selects the backend: FormatText and FormatJSON use
// slog handlers, FormatZerolog uses zerolog.
func New(level, format string, w io.Writer) (Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	format = strings.ToLower(format)
	switch format {
	case FormatText, FormatJSON, "":
		return NewSlogLogger(slog.New(newSlogHandler(format, lvl, w))), nil
	case FormatZerolog:
		zl := zerolog.New(w).Level(zerologLevel(lvl)).With().Timestamp().Logger()
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return NewZerologLogger(zl), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return NewSlogLogger(slog.New(newSlogHandler(FormatText, slog.LevelError, io.Discard)))
}

func zerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l <= slog.LevelDebug:
		return zerolog.DebugLevel
	case l <= slog.LevelInfo:
		return zerolog.InfoLevel
	case l <= slog.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
