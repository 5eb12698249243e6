// Package slogutil builds gitai's loggers: a one-line text handler, level
// parsing for flags and config, and the stderr and log file fan-out.
package slogutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"
)

// pathKeys are attribute keys whose string values are filesystem paths.
var pathKeys = map[string]bool{
	"path":       true,
	"root":       true,
	"dir":        true,
	"configPath": true,
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	// Level is the minimum level written. Nil means warn.
	Level slog.Leveler

	// Root is the work root. Absolute path attributes below it are written
	// relative to it.
	Root string
}

// Handler writes one line per record:
//
//	2026-01-02T03:04:05Z [warn] Syntax error in file | path=pkg/app.py error="[PARSE_FAILURE] invalid Python syntax"
//
// Groups flatten into dotted keys. Values containing spaces, quotes or '='
// are quoted.
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	opts   HandlerOptions
	prefix string // open groups, "scan."
	attrs  []byte // rendered " key=value" pairs from WithAttrs
}

// NewHandler returns a Handler writing to w.
func NewHandler(w io.Writer, opts HandlerOptions) *Handler {
	if opts.Level == nil {
		opts.Level = slog.LevelWarn
	}
	return &Handler{mu: &sync.Mutex{}, w: w, opts: opts}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 160)
	if !r.Time.IsZero() {
		buf = r.Time.UTC().AppendFormat(buf, time.RFC3339)
		buf = append(buf, ' ')
	}
	buf = append(buf, '[')
	buf = append(buf, strings.ToLower(r.Level.String())...)
	buf = append(buf, "] "...)
	buf = append(buf, r.Message...)

	pairs := h.attrs[:len(h.attrs):len(h.attrs)]
	r.Attrs(func(a slog.Attr) bool {
		pairs = h.appendAttr(pairs, h.prefix, a)
		return true
	})
	if len(pairs) > 0 {
		buf = append(buf, " |"...)
		buf = append(buf, pairs...)
	}
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = h.attrs[:len(h.attrs):len(h.attrs)]
	for _, a := range attrs {
		clone.attrs = h.appendAttr(clone.attrs, h.prefix, a)
	}
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *Handler) appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, member := range a.Value.Group() {
			buf = h.appendAttr(buf, prefix, member)
		}
		return buf
	}
	if a.Key == "" {
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, prefix...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	return appendValue(buf, h.format(a))
}

func (h *Handler) format(a slog.Attr) string {
	switch a.Value.Kind() {
	case slog.KindString:
		if pathKeys[a.Key] {
			return h.relative(a.Value.String())
		}
		return a.Value.String()
	case slog.KindTime:
		return a.Value.Time().UTC().Format(time.RFC3339)
	default:
		return a.Value.String()
	}
}

// relative shortens p to a path below the work root. Paths outside the root,
// and relative paths, are returned unchanged.
func (h *Handler) relative(p string) string {
	if h.opts.Root == "" || !filepath.IsAbs(p) {
		return p
	}
	rel, err := filepath.Rel(h.opts.Root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p
	}
	return rel
}

func appendValue(buf []byte, s string) []byte {
	if s == "" || strings.ContainsFunc(s, needsQuote) {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}

func needsQuote(r rune) bool {
	return r == ' ' || r == '"' || r == '=' || !unicode.IsPrint(r)
}
