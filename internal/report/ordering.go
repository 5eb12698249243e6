// Package report renders quality evaluations as markdown, JSON or YAML.
//
// # Ordering Contract
//
// Every format lists the worst code first:
//
//   - files: overall_score ASC, input order on ties
//   - functions: overall_score ASC, traversal order on ties
//
// Sorting never mutates the caller's evaluations.
package report

import (
	"sort"

	"gitai/internal/quality"
)

// SortEvaluations returns a copy of evals sorted by overall score ascending,
// with each file's functions sorted the same way.
func SortEvaluations(evals []quality.FileEvaluation) []quality.FileEvaluation {
	sorted := make([]quality.FileEvaluation, len(evals))
	for i, fe := range evals {
		fe.Functions = SortFunctions(fe.Functions)
		sorted[i] = fe
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OverallScore < sorted[j].OverallScore
	})
	return sorted
}

// SortFunctions returns a copy of functions sorted by overall score ascending.
func SortFunctions(functions []quality.FunctionMetrics) []quality.FunctionMetrics {
	sorted := make([]quality.FunctionMetrics, len(functions))
	copy(sorted, functions)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OverallScore < sorted[j].OverallScore
	})
	return sorted
}
