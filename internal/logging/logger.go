// SPDX-License-Identifier: MIT

// Package logging builds the structured logger used by the sparsecalc CLI.
//
// It is a thin layer over log/slog: a level type that round-trips through
// command-line flags, a text or JSON handler on a configurable writer
// (stderr by default), and an optional "service" attribute on every record.
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug, Service: "sparsecalc"})
//	logger.Info("matrix loaded", "path", path, "rows", m.Rows())
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug is for development troubleshooting.
	LevelDebug Level = iota
	// LevelInfo is for normal operational messages.
	LevelInfo
	// LevelWarn is for unexpected but recoverable situations.
	LevelWarn
	// LevelError is for failed operations.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR" or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toSlogLevel bridges Level to slog.Level; unknown values map to Info.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps a case-insensitive name ("debug", "info", "warn",
// "warning", "error") to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Config configures New. The zero value logs Info+ as text to stderr.
type Config struct {
	// Level sets the minimum level; records below it are dropped.
	Level Level

	// Service, when set, is attached to every record as "service".
	Service string

	// JSON selects slog's JSON handler instead of the text handler.
	JSON bool

	// Quiet discards all output.
	Quiet bool

	// Output overrides the destination. Default: os.Stderr.
	Output io.Writer
}

// New returns a *slog.Logger configured from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Quiet {
		out = io.Discard
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	if cfg.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", cfg.Service)})
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record; handy in tests.
func Discard() *slog.Logger {
	return New(Config{Quiet: true})
}
