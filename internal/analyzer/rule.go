package analyzer

import (
	"sort"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

// LineCheck inspects one line. line is the raw text, masked is the scanner's
// code-only view; lineNum is 1-based. It returns zero or more issues.
type LineCheck func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue

// FileCheck inspects the whole artifact at once
type FileCheck func(scanner *SourceScanner, ctx *Context) []domain.Issue

// Rule is one registered, categorized check. Rules are registered at process
// start and read-only afterwards; check functions hold no per-call state.
type Rule struct {
	ID          string
	Category    domain.Category
	Severity    domain.Severity
	Description string

	// Exactly one of CheckLine / CheckFile is set
	CheckLine LineCheck
	CheckFile FileCheck
}

var catalog = map[domain.Category][]Rule{}

// register adds a rule to the catalog. Called from package init only.
func register(r Rule) {
	catalog[r.Category] = append(catalog[r.Category], r)
}

// RulesFor returns the registered rules of one category in registration order
func RulesFor(category domain.Category) []Rule {
	return catalog[category]
}

// AllRules returns every registered rule in the fixed category order, with
// rules inside a category sorted by ID so evaluation order never depends on
// file init order.
func AllRules() []Rule {
	var rules []Rule
	for _, category := range domain.Categories {
		group := make([]Rule, len(catalog[category]))
		copy(group, catalog[category])
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
		rules = append(rules, group...)
	}
	return rules
}

// issue builds an unnumbered issue for a rule match. The engine assigns IDs.
func (r Rule) issue(message string, line, column int, suggestion string) domain.Issue {
	return domain.Issue{
		Severity:   r.Severity,
		Category:   r.Category,
		RuleID:     r.ID,
		Message:    message,
		Line:       line,
		Column:     column,
		Suggestion: suggestion,
	}
}
