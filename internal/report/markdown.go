package report

import (
	"fmt"
	"strconv"
	"strings"

	"gitai/internal/quality"
)

// NoFilesMessage is the whole markdown report when there is nothing to report.
const NoFilesMessage = "No Python files found for evaluation."

// Markdown renders evaluations as a markdown report, worst files and
// functions first. Lines are joined with "\n" and there is no trailing
// newline.
func Markdown(evals []quality.FileEvaluation) string {
	if len(evals) == 0 {
		return NoFilesMessage
	}

	lines := []string{"# Code Quality Report", ""}

	for _, fe := range SortEvaluations(evals) {
		lines = append(lines, fmt.Sprintf("## %s (Overall: %s/10)", fe.Filename, FormatScore(fe.OverallScore)))

		if len(fe.Functions) == 0 {
			lines = append(lines, "No functions found in this file.", "")
			continue
		}

		for _, fn := range fe.Functions {
			lines = append(lines,
				fmt.Sprintf("### %s (Score: %s/10)", fn.Name, FormatScore(fn.OverallScore)),
				metricLine("Complexity", fn.Complexity),
				metricLine("Method Length", fn.MethodLength),
				metricLine("Working Memory", fn.WorkingMemory),
				"",
			)
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func metricLine(label string, m quality.MetricScore) string {
	return fmt.Sprintf("- %s: %d/%d (Score: %s/10)", label, m.Value, m.Max, FormatScore(m.Score))
}

// FormatScore formats a score with the fewest digits that round-trip, and
// always at least one decimal: 8 -> "8.0", 7.8 -> "7.8".
func FormatScore(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
