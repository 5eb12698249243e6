package quality

import (
	"path/filepath"
	"strconv"
	"strings"
)

// NormalizedScore maps a raw metric onto 0-10: 10 at zero, falling linearly
// to 0 at limit and clamped there. The result is not rounded.
func NormalizedScore(raw, limit int) float64 {
	score := MaxScore - (float64(raw)/float64(limit))*MaxScore
	if score < 0 {
		return 0
	}
	return score
}

// OverallScore combines the three unrounded component scores with the fixed
// 0.4/0.3/0.3 weights and rounds to one decimal.
func OverallScore(complexity, length, memory float64) float64 {
	return Round1(complexity*ComplexityWeight + length*MethodLengthWeight + memory*WorkingMemoryWeight)
}

// FileScore is the rounded mean of the function scores, or EmptyFileScore
// when there are none.
func FileScore(functions []FunctionMetrics) float64 {
	if len(functions) == 0 {
		return EmptyFileScore
	}
	sum := 0.0
	for _, f := range functions {
		sum += f.OverallScore
	}
	return Round1(sum / float64(len(functions)))
}

// Round1 rounds to one decimal place. Rounding works on the exact binary
// value with ties to even, so 7.66 -> 7.7, 0.25 -> 0.2 and 0.35 (stored
// just below) -> 0.3.
func Round1(f float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 1, 64), 64)
	if err != nil {
		return f
	}
	return r
}

// newMetricScore builds a MetricScore and also returns the unrounded score.
func newMetricScore(raw, limit int) (MetricScore, float64) {
	score := NormalizedScore(raw, limit)
	return MetricScore{Value: raw, Score: Round1(score), Max: limit}, score
}

// HasSourceExtension reports whether path ends with one of exts.
// Matching is case-sensitive.
func HasSourceExtension(path string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// isIgnored reports whether a base name matches any ignore glob.
func isIgnored(name string, ignore []string) bool {
	for _, pattern := range ignore {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
