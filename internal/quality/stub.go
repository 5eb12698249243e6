//go:build !cgo

package quality

import (
	"context"
	"errors"
)

// ErrNoCGO is returned when quality analysis is unavailable due to missing CGO.
var ErrNoCGO = errors.New("quality analysis requires CGO (tree-sitter)")

// Engine evaluates Python files.
// This is a stub implementation for non-CGO builds.
type Engine struct {
	opts Options
}

// NewEngine creates an engine whose evaluations all fail with ErrNoCGO.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts.normalize()}
}

// Limits returns the thresholds the engine scores against.
func (e *Engine) Limits() Limits {
	return e.opts.Limits
}

// EvaluateSource returns ErrNoCGO.
func (e *Engine) EvaluateSource(ctx context.Context, path string, source []byte) (*FileEvaluation, error) {
	return nil, ErrNoCGO
}

// EvaluateFile returns ErrNoCGO.
func (e *Engine) EvaluateFile(ctx context.Context, path string) (*FileEvaluation, error) {
	return nil, ErrNoCGO
}

// EvaluateDirectory returns ErrNoCGO.
func (e *Engine) EvaluateDirectory(ctx context.Context, root string) ([]FileEvaluation, error) {
	return nil, ErrNoCGO
}

// EvaluatePaths returns ErrNoCGO.
func (e *Engine) EvaluatePaths(ctx context.Context, paths []string) ([]FileEvaluation, error) {
	return nil, ErrNoCGO
}

// DiscoverFiles returns ErrNoCGO.
func (e *Engine) DiscoverFiles(ctx context.Context, root string) ([]string, error) {
	return nil, ErrNoCGO
}

// IsAvailable returns whether quality analysis is available.
// Returns false when CGO is disabled.
func IsAvailable() bool {
	return false
}
