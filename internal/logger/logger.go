// Package logger builds the process-wide slog.Logger from configuration.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects level, output format and destination.
type Options struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ParseLevel maps debug, info, warn and error (any case) to a slog level.
// An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// New returns a logger writing to stdout unless File names a file to append
// to. os.DevNull discards everything. Unusable options fall back to the
// defaults and the problem is logged as a warning.
func New(opts Options) (*slog.Logger, io.Closer) {
	var warnings []string

	level, err := ParseLevel(opts.Level)
	if err != nil {
		warnings = append(warnings, err.Error())
	}

	var out io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}
	switch opts.File {
	case "", "-":
	case os.DevNull:
		return slog.New(slog.DiscardHandler), closer
	default:
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not open log file: %v", err))
		} else {
			out, closer = f, f
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "text":
		handler = slog.NewTextHandler(out, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(out, handlerOpts)
	default:
		warnings = append(warnings, fmt.Sprintf("unknown log format %q", opts.Format))
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	logger := slog.New(handler)
	for _, w := range warnings {
		logger.Warn("logger option ignored", "reason", w)
	}
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
