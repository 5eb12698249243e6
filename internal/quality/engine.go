package quality

import (
	"log/slog"

	"gitai/internal/slogutil"
)

// Options configures an Engine.
type Options struct {
	// Limits are the per-metric maxima; zero fields fall back to the defaults.
	Limits Limits

	// Extensions selects files during directory scans and path lists.
	// Defaults to DefaultExtensions.
	Extensions []string

	// Ignore holds glob patterns matched against file and directory base
	// names; matching entries are skipped by directory scans.
	Ignore []string

	// Logger receives diagnostics. Nil means discard.
	Logger *slog.Logger
}

func (o Options) normalize() Options {
	o.Limits = o.Limits.withDefaults()
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions
	}
	o.Logger = slogutil.OrDiscard(o.Logger)
	return o
}
