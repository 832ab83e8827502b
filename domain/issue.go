package domain

// Severity represents the urgency of a reported issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// SeverityRank returns a numeric rank for sorting (higher = more urgent)
func SeverityRank(s Severity) int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// Category groups issues for filtering and per-dimension scoring
type Category string

const (
	CategorySyntax          Category = "syntax"
	CategoryNaming          Category = "naming"
	CategoryStructure       Category = "structure"
	CategoryLogic           Category = "logic"
	CategoryHooks           Category = "hooks"
	CategoryTypeSafety      Category = "typesafety"
	CategoryAccessibility   Category = "accessibility"
	CategoryPerformance     Category = "performance"
	CategoryOperator        Category = "operator"
	CategorySymbol          Category = "symbol"
	CategoryMaintainability Category = "maintainability"
)

// Categories lists every category in the fixed evaluation order.
// The order is stable so issue IDs are reproducible across runs.
var Categories = []Category{
	CategorySyntax,
	CategoryNaming,
	CategoryStructure,
	CategoryLogic,
	CategoryHooks,
	CategoryTypeSafety,
	CategoryAccessibility,
	CategoryPerformance,
	CategoryOperator,
	CategorySymbol,
	CategoryMaintainability,
}

// Issue represents a single diagnostic finding.
// Issues are created during an analysis pass and never mutated afterwards.
type Issue struct {
	// ID is unique within one analysis run
	ID string `json:"id"`

	// Severity is one of error, warning, info
	Severity Severity `json:"severity"`

	// Category is the grouping label used for filtering and scoring
	Category Category `json:"category"`

	// Message is the human-readable description
	Message string `json:"message"`

	// Line is the 1-based source line
	Line int `json:"line"`

	// Column is the 0-based column of the match
	Column int `json:"column"`

	// RuleID identifies the rule that produced the issue
	RuleID string `json:"rule_id"`

	// Suggestion is an optional remediation hint
	Suggestion string `json:"suggestion,omitempty"`
}

// Summary provides aggregate issue counts.
// Invariant: Errors + Warnings + Info == Total == len(issues).
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
	Total    int `json:"total"`

	// ByCategory maps each category to its issue count.
	// Categories are mutually exclusive per issue, so the values sum to Total.
	ByCategory map[Category]int `json:"by_category,omitempty"`
}

// FilterCriteria selects a subset of issues.
// Empty sets and an empty search term place no restriction.
type FilterCriteria struct {
	Severities []Severity `json:"severities,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	SearchTerm string     `json:"search_term,omitempty"`
}

// DefaultFilterCriteria returns criteria that match every issue
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{}
}

// FilterStats reports counts over the full issue list alongside the
// filtered count, so a consumer can render "N of M" without recomputing.
type FilterStats struct {
	Total      int              `json:"total"`
	Filtered   int              `json:"filtered"`
	BySeverity map[Severity]int `json:"by_severity"`
	ByCategory map[Category]int `json:"by_category"`
}
