package service

import (
	"strings"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

// IssueFilterImpl implements the IssueFilter interface. It is stateless; every
// method is a pure function of its arguments.
type IssueFilterImpl struct{}

// NewIssueFilter creates a new issue filter service
func NewIssueFilter() *IssueFilterImpl {
	return &IssueFilterImpl{}
}

// Summarize counts issues by severity and category
func (f *IssueFilterImpl) Summarize(issues []domain.Issue) domain.Summary {
	summary := domain.Summary{
		Total:      len(issues),
		ByCategory: make(map[domain.Category]int),
	}
	for _, issue := range issues {
		switch issue.Severity {
		case domain.SeverityError:
			summary.Errors++
		case domain.SeverityWarning:
			summary.Warnings++
		case domain.SeverityInfo:
			summary.Info++
		}
		summary.ByCategory[issue.Category]++
	}
	return summary
}

// Filter returns the issues matching the criteria, preserving input order.
// Empty criteria match everything.
func (f *IssueFilterImpl) Filter(issues []domain.Issue, criteria domain.FilterCriteria) []domain.Issue {
	search := strings.ToLower(criteria.SearchTerm)

	filtered := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if !severityMatches(issue.Severity, criteria.Severities) {
			continue
		}
		if !categoryMatches(issue.Category, criteria.Categories) {
			continue
		}
		if search != "" && !searchMatches(issue, search) {
			continue
		}
		filtered = append(filtered, issue)
	}
	return filtered
}

// Stats reports full-list counts next to the filtered count
func (f *IssueFilterImpl) Stats(all []domain.Issue, filtered []domain.Issue) domain.FilterStats {
	stats := domain.FilterStats{
		Total:      len(all),
		Filtered:   len(filtered),
		BySeverity: make(map[domain.Severity]int),
		ByCategory: make(map[domain.Category]int),
	}
	for _, issue := range all {
		stats.BySeverity[issue.Severity]++
		stats.ByCategory[issue.Category]++
	}
	return stats
}

func severityMatches(severity domain.Severity, allowed []domain.Severity) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, s := range allowed {
		if s == severity {
			return true
		}
	}
	return false
}

func categoryMatches(category domain.Category, allowed []domain.Category) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, c := range allowed {
		if c == category {
			return true
		}
	}
	return false
}

// searchMatches checks the message, category, rule ID, and suggestion
// case-insensitively
func searchMatches(issue domain.Issue, search string) bool {
	return strings.Contains(strings.ToLower(issue.Message), search) ||
		strings.Contains(strings.ToLower(string(issue.Category)), search) ||
		strings.Contains(strings.ToLower(issue.RuleID), search) ||
		strings.Contains(strings.ToLower(issue.Suggestion), search)
}
