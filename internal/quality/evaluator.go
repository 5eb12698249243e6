//go:build cgo

package quality

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"

	"gitai/internal/errors"
)

// Engine evaluates Python files. It owns a single tree-sitter parser and is
// not safe for concurrent use; evaluations run sequentially in input order.
type Engine struct {
	parser *Parser
	opts   Options
}

// NewEngine creates an engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{
		parser: NewParser(),
		opts:   opts.normalize(),
	}
}

// Limits returns the thresholds the engine scores against.
func (e *Engine) Limits() Limits {
	return e.opts.Limits
}

// EvaluateFunction computes the metrics of one def node.
func (e *Engine) EvaluateFunction(node *sitter.Node, source []byte) FunctionMetrics {
	limits := e.opts.Limits

	complexity, cScore := newMetricScore(computeCyclomaticComplexity(node), limits.MaxComplexity)
	length, lScore := newMetricScore(computeMethodLength(node), limits.MaxMethodLength)
	memory, mScore := newMetricScore(computeWorkingMemory(node, source), limits.MaxWorkingMemory)

	return FunctionMetrics{
		Name:          functionName(node, source),
		StartLine:     int(node.StartPoint().Row) + 1,
		Complexity:    complexity,
		MethodLength:  length,
		WorkingMemory: memory,
		OverallScore:  OverallScore(cScore, lScore, mScore),
	}
}

// EvaluateSource evaluates already-loaded source. Invalid syntax is not an
// error: the result has no functions, an UnparsableFileScore and Error set.
// Only cancellation is returned as an error.
func (e *Engine) EvaluateSource(ctx context.Context, path string, source []byte) (*FileEvaluation, error) {
	result := &FileEvaluation{
		Filename:  filepath.Base(path),
		Path:      path,
		Functions: make([]FunctionMetrics, 0),
	}

	root, err := e.parser.Parse(ctx, source)
	if err != nil {
		if !errors.Is(err, errors.ParseFailure) {
			return nil, err
		}
		e.opts.Logger.Warn("Syntax error in file",
			"path", path,
			"error", err.Error(),
		)
		result.OverallScore = UnparsableFileScore
		result.Error = err.Error()
		return result, nil
	}

	for _, fn := range findFunctions(root) {
		result.Functions = append(result.Functions, e.EvaluateFunction(fn, source))
	}
	result.OverallScore = FileScore(result.Functions)

	return result, nil
}

// EvaluateFile reads and evaluates a single file. An unreadable file is a
// FILE_READ_FAILURE error.
func (e *Engine) EvaluateFile(ctx context.Context, path string) (*FileEvaluation, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.FileReadFailure, "cannot read "+path, err, nil)
	}
	return e.EvaluateSource(ctx, path, source)
}

// EvaluateDirectory evaluates every source file under root in walk order.
// Files that fail are logged and left out of the result.
func (e *Engine) EvaluateDirectory(ctx context.Context, root string) ([]FileEvaluation, error) {
	paths, err := e.DiscoverFiles(ctx, root)
	if err != nil {
		return nil, err
	}

	results := make([]FileEvaluation, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fe, err := e.EvaluateFile(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			e.opts.Logger.Warn("Error evaluating file",
				"path", path,
				"error", err.Error(),
			)
			continue
		}
		results = append(results, *fe)
	}

	e.opts.Logger.Info("Directory evaluated",
		"root", root,
		"files", len(results),
	)
	return results, nil
}

// EvaluatePaths evaluates an explicit list of files, such as those changed on
// a branch. Paths without a source extension are dropped. An unreadable file
// is evaluated as empty source, so it scores EmptyFileScore instead of
// aborting the batch.
func (e *Engine) EvaluatePaths(ctx context.Context, paths []string) ([]FileEvaluation, error) {
	results := make([]FileEvaluation, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !HasSourceExtension(path, e.opts.Extensions) {
			continue
		}

		source, err := os.ReadFile(path)
		if err != nil {
			e.opts.Logger.Warn("Error reading file",
				"path", path,
				"error", err.Error(),
			)
			source = nil
		}

		fe, err := e.EvaluateSource(ctx, path, source)
		if err != nil {
			return nil, err
		}
		results = append(results, *fe)
	}
	return results, nil
}

// DiscoverFiles walks root and returns the files carrying a source extension,
// in lexical walk order. Entries whose base name matches an ignore pattern are
// skipped, directories included. Unreadable subdirectories are logged and
// skipped; a failure on root itself is returned.
func (e *Engine) DiscoverFiles(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			e.opts.Logger.Warn("Error walking directory",
				"path", path,
				"error", err.Error(),
			)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if path != root && isIgnored(d.Name(), e.opts.Ignore) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && HasSourceExtension(d.Name(), e.opts.Extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, errors.New(errors.FileReadFailure, "cannot scan "+root, err, nil)
	}

	return files, nil
}

// IsAvailable reports whether the tree-sitter engine is compiled in.
func IsAvailable() bool {
	return true
}
