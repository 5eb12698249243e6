package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"gitai/internal/quality"
)

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// IsSupportedFormat reports whether Render accepts format.
func IsSupportedFormat(format string) bool {
	switch format {
	case FormatMarkdown, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Envelope wraps the evaluations of one run for machine-readable output.
type Envelope struct {
	RunID       string                   `json:"runId" yaml:"runId"`
	GeneratedAt time.Time                `json:"generatedAt" yaml:"generatedAt"`
	Version     string                   `json:"version" yaml:"version"`
	Files       []quality.FileEvaluation `json:"files" yaml:"files"`
}

// NewEnvelope creates an envelope with a fresh run ID. Files are sorted worst
// first, as in the markdown report.
func NewEnvelope(evals []quality.FileEvaluation, version string) *Envelope {
	return &Envelope{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Version:     version,
		Files:       SortEvaluations(evals),
	}
}

// JSON encodes the envelope as indented JSON with a trailing newline.
func (e *Envelope) JSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// YAML encodes the envelope as YAML.
func (e *Envelope) YAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(e); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render produces the report for evals in the given format.
func Render(format string, evals []quality.FileEvaluation, version string) ([]byte, error) {
	switch format {
	case FormatMarkdown, "":
		return []byte(Markdown(evals) + "\n"), nil
	case FormatJSON:
		return NewEnvelope(evals, version).JSON()
	case FormatYAML:
		return NewEnvelope(evals, version).YAML()
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
