package domain

// CheckResult represents the result of a quality gate check
type CheckResult struct {
	Passed      bool             `json:"passed"`
	ExitCode    int              `json:"exit_code"`
	Violations  []CheckViolation `json:"violations"`
	Summary     CheckSummary     `json:"summary"`
	Duration    int64            `json:"duration_ms"`
	GeneratedAt string           `json:"generated_at"`
	Version     string           `json:"version"`
}

// CheckViolation represents a single threshold violation
type CheckViolation struct {
	Rule      string `json:"rule"`                // min-score, max-errors, max-warnings
	Severity  string `json:"severity"`            // error, warning
	Message   string `json:"message"`             // Human-readable description
	File      string `json:"file,omitempty"`      // File the violation applies to
	Actual    string `json:"actual"`              // Actual value
	Threshold string `json:"threshold,omitempty"` // Configured threshold
}

// CheckSummary provides aggregate statistics for a check run
type CheckSummary struct {
	FilesAnalyzed   int     `json:"files_analyzed"`
	TotalViolations int     `json:"total_violations"`
	TotalIssues     int     `json:"total_issues"`
	TotalErrors     int     `json:"total_errors"`
	AverageScore    float64 `json:"average_score"`
	LowestScore     int     `json:"lowest_score"`
	LowestGrade     string  `json:"lowest_grade"`
}
