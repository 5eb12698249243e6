// Package quality scores Python source files by per-function complexity,
// method length and working memory, parsed with tree-sitter.
package quality

// Default thresholds. A raw metric at or above its maximum scores 0.
const (
	DefaultMaxComplexity    = 10
	DefaultMaxMethodLength  = 50
	DefaultMaxWorkingMemory = 8
)

// Weights of the component scores in a function's overall score.
const (
	ComplexityWeight    = 0.4
	MethodLengthWeight  = 0.3
	WorkingMemoryWeight = 0.3
)

// Score bounds.
const (
	MaxScore = 10.0

	// EmptyFileScore is the score of a file that parses but defines no functions.
	EmptyFileScore = 10.0

	// UnparsableFileScore is the score of a file that fails to parse.
	UnparsableFileScore = 0.0
)

// DefaultExtensions are the source extensions picked up by directory scans.
var DefaultExtensions = []string{".py"}

// Limits holds the per-metric maxima used to normalize raw values into scores.
// It is passed by value, so an Engine's limits cannot change after construction.
type Limits struct {
	MaxComplexity    int `json:"maxComplexity"`
	MaxMethodLength  int `json:"maxMethodLength"`
	MaxWorkingMemory int `json:"maxWorkingMemory"`
}

// DefaultLimits returns the standard thresholds (10, 50, 8).
func DefaultLimits() Limits {
	return Limits{
		MaxComplexity:    DefaultMaxComplexity,
		MaxMethodLength:  DefaultMaxMethodLength,
		MaxWorkingMemory: DefaultMaxWorkingMemory,
	}
}

// withDefaults replaces non-positive fields with the defaults.
func (l Limits) withDefaults() Limits {
	if l.MaxComplexity <= 0 {
		l.MaxComplexity = DefaultMaxComplexity
	}
	if l.MaxMethodLength <= 0 {
		l.MaxMethodLength = DefaultMaxMethodLength
	}
	if l.MaxWorkingMemory <= 0 {
		l.MaxWorkingMemory = DefaultMaxWorkingMemory
	}
	return l
}

// MetricScore is one raw metric together with its normalized score.
type MetricScore struct {
	// Value is the raw metric
	Value int `json:"value" yaml:"value"`

	// Score is the 0-10 normalized score, rounded to one decimal
	Score float64 `json:"score" yaml:"score"`

	// Max is the threshold at which Score reaches 0
	Max int `json:"max" yaml:"max"`
}

// FunctionMetrics contains the quality metrics of a single function.
type FunctionMetrics struct {
	// Name is the function name
	Name string `json:"name" yaml:"name"`

	// StartLine is the 1-based line of the def keyword
	StartLine int `json:"start_line" yaml:"start_line"`

	// Complexity is the cyclomatic complexity (decision points + 1)
	Complexity MetricScore `json:"complexity" yaml:"complexity"`

	// MethodLength is the line span from the def line to the last body statement
	MethodLength MetricScore `json:"method_length" yaml:"method_length"`

	// WorkingMemory is the number of distinct variable names in scope
	WorkingMemory MetricScore `json:"working_memory" yaml:"working_memory"`

	// OverallScore is the weighted combination of the three scores
	OverallScore float64 `json:"overall_score" yaml:"overall_score"`
}

// FileEvaluation contains the quality metrics of an entire file.
type FileEvaluation struct {
	// Filename is the base name of the evaluated file
	Filename string `json:"filename" yaml:"filename"`

	// Path is the path the file was read from
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Functions holds one entry per function, in traversal order
	Functions []FunctionMetrics `json:"functions" yaml:"functions"`

	// OverallScore is the mean function score rounded to one decimal,
	// EmptyFileScore with no functions, UnparsableFileScore on parse failure
	OverallScore float64 `json:"overall_score" yaml:"overall_score"`

	// Error is set if the file failed to parse
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
