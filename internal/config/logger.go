package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger opens the configured log sink. Without a log file the logger
// discards, since the terminal belongs to the UI. The returned close func
// is never nil.
func (c Config) Logger() (*slog.Logger, func() error, error) {
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f.Close, nil
}
