package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/buckets/config"
)

// SetupLogging installs a slog handler writing to w as the default logger.
func SetupLogging(w io.Writer, cfg config.LoggingConfig) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))

	return nil
}
