package analyzer

import (
	"math"
	"regexp"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

// Composite weights. They sum to 100.
const (
	weightStructure       = 25
	weightComplexity      = 20
	weightMaintainability = 20
	weightNaming          = 15
	weightPerformance     = 10
	weightAccessibility   = 10
)

// Per-category penalty weights for the extension quality dimensions
var categoryPenalty = map[domain.Category]float64{
	domain.CategoryNaming:          1.5,
	domain.CategoryStructure:       2.0,
	domain.CategorySyntax:          3.0,
	domain.CategoryTypeSafety:      2.0,
	domain.CategoryOperator:        1.5,
	domain.CategorySymbol:          1.0,
	domain.CategoryAccessibility:   2.0,
	domain.CategoryPerformance:     2.0,
	domain.CategoryMaintainability: 1.5,
}

var (
	controlFlowRe = regexp.MustCompile(`\b(?:if|for|while|switch|catch)\b|[^?.]\?[^?.]`)
	exportedRe    = regexp.MustCompile(`\bexport\s+(?:default\s+)?(?:function|const|class)\b`)
	ambientIORe   = regexp.MustCompile(`\b(?:setTimeout|setInterval|localStorage|sessionStorage|Math\.random|Date\.now|document\.|window\.|fetch)\b`)
)

// gradeBoundary maps an inclusive lower bound to a letter grade. The table
// is ordered, non-overlapping, and exhaustive over 0-100.
type gradeBoundary struct {
	min   int
	grade string
}

var gradeTable = []gradeBoundary{
	{90, "A+"},
	{85, "A"},
	{80, "A-"},
	{75, "B+"},
	{70, "B"},
	{65, "B-"},
	{60, "C+"},
	{55, "C"},
	{50, "C-"},
	{45, "D+"},
	{40, "D"},
	{0, "F"},
}

// GradeFor maps a composite score to its letter grade
func GradeFor(score int) string {
	for _, b := range gradeTable {
		if score >= b.min {
			return b.grade
		}
	}
	return "F"
}

// Score converts issue counts and structural counts into the bounded metric
// set. Every dimension clamps to its declared range regardless of input size.
func Score(scanner *SourceScanner, issues []domain.Issue) domain.Metrics {
	byCategory := make(map[domain.Category]int)
	for _, issue := range issues {
		byCategory[issue.Category]++
	}

	m := domain.Metrics{
		Complexity:      complexityScore(scanner),
		Maintainability: clamp(10-float64(byCategory[domain.CategoryMaintainability])*1.5-float64(len(issues))*0.25, 1, 10),
		Testability:     testabilityScore(scanner),
		Performance:     clamp(10-float64(byCategory[domain.CategoryPerformance])*2, 1, 10),

		NamingQuality:        extensionScore(byCategory, domain.CategoryNaming),
		StructureQuality:     extensionScore(byCategory, domain.CategoryStructure),
		SyntaxQuality:        extensionScore(byCategory, domain.CategorySyntax),
		TypeQuality:          extensionScore(byCategory, domain.CategoryTypeSafety),
		OperatorQuality:      extensionScore(byCategory, domain.CategoryOperator),
		SymbolQuality:        extensionScore(byCategory, domain.CategorySymbol),
		AccessibilityQuality: extensionScore(byCategory, domain.CategoryAccessibility),
	}

	m.OverallScore = composite(m)
	m.Grade = GradeFor(m.OverallScore)
	return m
}

// complexityScore counts control-flow keyword occurrences; more branches
// lower the score
func complexityScore(scanner *SourceScanner) int {
	branches := 0
	for idx := range scanner.Lines() {
		branches += len(controlFlowRe.FindAllString(scanner.Masked(idx), -1))
	}
	return clamp(10-float64(branches)/3, 1, 10)
}

// testabilityScore rewards exported pure-looking constructs and penalizes
// ambient I/O reachable from render
func testabilityScore(scanner *SourceScanner) int {
	score := 5.0
	exported := false
	ambient := 0
	for idx := range scanner.Lines() {
		masked := scanner.Masked(idx)
		if exportedRe.MatchString(masked) {
			exported = true
		}
		ambient += len(ambientIORe.FindAllString(masked, -1))
	}
	if exported {
		score += 2
	}
	score -= float64(ambient)
	return clamp(score, 1, 10)
}

// extensionScore applies the per-category penalty weight, floored at 0
func extensionScore(byCategory map[domain.Category]int, category domain.Category) int {
	return clamp(10-float64(byCategory[category])*categoryPenalty[category], 0, 10)
}

// composite blends the breakdown dimensions, each normalized to 0-100,
// through the fixed weights
func composite(m domain.Metrics) int {
	sum := float64(m.StructureQuality*10*weightStructure) +
		float64(m.Complexity*10*weightComplexity) +
		float64(m.Maintainability*10*weightMaintainability) +
		float64(m.NamingQuality*10*weightNaming) +
		float64(m.Performance*10*weightPerformance) +
		float64(m.AccessibilityQuality*10*weightAccessibility)
	return clampInt(int(math.Round(sum/100)), 0, 100)
}

func clamp(v, lo, hi float64) int {
	return clampInt(int(math.Round(v)), int(lo), int(hi))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
