package domain

// Winner identifies which side of a comparison scored higher
type Winner string

const (
	WinnerA   Winner = "A"
	WinnerB   Winner = "B"
	WinnerTie Winner = "tie"
)

// MetricComparison is one per-dimension comparison row
type MetricComparison struct {
	Metric     string `json:"metric"`
	ValueA     int    `json:"value_a"`
	ValueB     int    `json:"value_b"`
	Difference int    `json:"difference"`
	Winner     Winner `json:"winner"`
}

// ComparisonResult is the full two-artifact comparison.
// Derived from two AnalysisResults; never stored.
type ComparisonResult struct {
	NameA string `json:"name_a"`
	NameB string `json:"name_b"`

	Metrics []MetricComparison `json:"metrics"`

	// OverallA and OverallB are per-side single-number scores:
	// mean of the four core dimensions scaled to 0-100.
	OverallA int `json:"overall_a"`
	OverallB int `json:"overall_b"`

	// Overall is the winner by OverallA vs OverallB
	Overall Winner `json:"overall"`
}

// ComparisonService compares two analyzed artifacts metric by metric
type ComparisonService interface {
	Compare(a, b *AnalyzedFile) (*ComparisonResult, error)
}
