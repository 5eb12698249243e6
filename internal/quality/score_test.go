package quality

import (
	"testing"
)

func TestNormalizedScore(t *testing.T) {
	tests := []struct {
		raw, limit int
		want       float64
	}{
		{0, 10, 10},
		{1, 10, 9},
		{4, 10, 6},
		{10, 10, 0},
		{25, 10, 0},
		{5, 50, 9},
		{2, 8, 7.5},
	}

	for _, tt := range tests {
		got := NormalizedScore(tt.raw, tt.limit)
		if got != tt.want {
			t.Errorf("NormalizedScore(%d, %d) = %v, want %v", tt.raw, tt.limit, got, tt.want)
		}
	}
}

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name    string
		c, l, m float64
		want    float64
	}{
		// 3.2 + 2.7 + 1.86 = 7.76
		{"weighted", 8.0, 9.0, 6.2, 7.8},
		{"perfect", 10, 10, 10, 10},
		{"zero", 0, 0, 0, 0},
		{"complexity only", 10, 0, 0, 4},
		{"unrounded inputs", 9.0, 9.6, 10, 9.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallScore(tt.c, tt.l, tt.m); got != tt.want {
				t.Errorf("OverallScore(%v, %v, %v) = %v, want %v", tt.c, tt.l, tt.m, got, tt.want)
			}
		})
	}
}

func TestFileScore(t *testing.T) {
	if got := FileScore(nil); got != EmptyFileScore {
		t.Errorf("FileScore(nil) = %v, want %v", got, EmptyFileScore)
	}

	functions := []FunctionMetrics{{OverallScore: 8.0}, {OverallScore: 9.0}}
	if got := FileScore(functions); got != 8.5 {
		t.Errorf("FileScore([8.0 9.0]) = %v, want 8.5", got)
	}

	functions = []FunctionMetrics{{OverallScore: 7.0}, {OverallScore: 7.0}, {OverallScore: 8.0}}
	if got := FileScore(functions); got != 7.3 {
		t.Errorf("FileScore([7.0 7.0 8.0]) = %v, want 7.3", got)
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{7.76, 7.8},
		{7.66, 7.7},
		{7.45, 7.5},
		{0.25, 0.2},
		{0.35, 0.3},
		{9.48, 9.5},
		{10, 10},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHasSourceExtension(t *testing.T) {
	exts := []string{".py", ".pyw"}

	tests := []struct {
		path string
		want bool
	}{
		{"main.py", true},
		{"pkg/gui.pyw", true},
		{"README.md", false},
		{"Script.PY", false},
		{"py", false},
	}

	for _, tt := range tests {
		if got := HasSourceExtension(tt.path, exts); got != tt.want {
			t.Errorf("HasSourceExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsIgnored(t *testing.T) {
	ignore := []string{"venv", "test_*.py", "[bad"}

	tests := []struct {
		name string
		want bool
	}{
		{"venv", true},
		{"test_models.py", true},
		{"models.py", false},
		{".venv", false},
	}

	for _, tt := range tests {
		if got := isIgnored(tt.name, ignore); got != tt.want {
			t.Errorf("isIgnored(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLimitsWithDefaults(t *testing.T) {
	got := Limits{MaxComplexity: 20}.withDefaults()
	want := Limits{MaxComplexity: 20, MaxMethodLength: DefaultMaxMethodLength, MaxWorkingMemory: DefaultMaxWorkingMemory}
	if got != want {
		t.Errorf("withDefaults() = %+v, want %+v", got, want)
	}

	if DefaultLimits() != (Limits{10, 50, 8}) {
		t.Errorf("DefaultLimits() = %+v", DefaultLimits())
	}
}
