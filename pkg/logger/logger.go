package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrInvalidLevel is returned for unknown level names.
var ErrInvalidLevel = errors.New("logger: invalid level")

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds logger settings.
type Config struct {
	// Output defaults to os.Stderr so command output on stdout stays clean.
	Output io.Writer
	// Level is one of debug, info, warn, error. Default: info.
	Level string
	// Format is json or text. Default: json.
	Format string
	Sentry SentryConfig
}

// New creates a logger from cfg. Context extractors are applied to every
// destination, including Sentry when it is configured.
func New(cfg Config, extractors ...ContextExtractor) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatJSON:
		handler = slog.NewJSONHandler(out, opts)
	case FormatText:
		handler = slog.NewTextHandler(out, opts)
	default:
		return nil, fmt.Errorf("logger: unknown format %q", cfg.Format)
	}

	if cfg.Sentry.DSN != "" {
		sh, err := newSentryHandler(cfg.Sentry)
		if err != nil {
			// Keep logging locally when Sentry cannot start.
			slog.New(handler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		} else {
			handler = newMultiHandler(handler, sh)
		}
	}

	return slog.New(NewLogHandlerDecorator(handler, extractors...)), nil
}

// ParseLevel maps a level name to a slog.Level. An empty name means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
