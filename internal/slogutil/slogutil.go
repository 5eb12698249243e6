package slogutil

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
)

// Silent is above every level gitai logs at; -q uses it.
const Silent = slog.LevelError + 100

// Config describes the process logger.
type Config struct {
	Level slog.Level

	// Root is the work root. Path attributes below it are logged relative to
	// it, and a relative File is resolved against it.
	Root string

	// File, when set, receives the same records as stderr. It rotates once
	// it would grow past MaxSize, keeping MaxBackups old copies.
	File       string
	MaxSize    string
	MaxBackups int
}

// New returns the process logger. The closer releases the log file and is
// never nil.
func New(stderr io.Writer, cfg Config) (*slog.Logger, io.Closer, error) {
	opts := HandlerOptions{Level: cfg.Level, Root: cfg.Root}
	console := NewHandler(stderr, opts)
	if cfg.File == "" {
		return slog.New(console), nopCloser{}, nil
	}

	path := cfg.File
	if !filepath.IsAbs(path) && cfg.Root != "" {
		path = filepath.Join(cfg.Root, path)
	}
	rf, err := OpenRotatingFile(path, ParseSize(cfg.MaxSize), cfg.MaxBackups)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(fanout{console, NewHandler(rf, opts)}), rf, nil
}

// NewLogger returns a logger writing gitai lines to w.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewHandler(w, HandlerOptions{Level: level}))
}

// NewDiscardLogger returns a logger that drops every record.
func NewDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
}

// OrDiscard returns l, or a discard logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return NewDiscardLogger()
	}
	return l
}

// ParseLevel reads a configured level name: debug, info, warn (or warning)
// and error in any case, with slog offsets such as "info+2". Anything else
// is warn.
func ParseLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// VerbosityLevel maps the -v count and -q flag to a level: warn by default,
// info for -v, debug for -vv and more. -q wins and silences everything.
func VerbosityLevel(verbose int, quiet bool) slog.Level {
	if quiet {
		return Silent
	}
	return max(slog.LevelWarn-slog.Level(4*verbose), slog.LevelDebug)
}

// fanout sends each record to every handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
