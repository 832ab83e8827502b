// Package testutil provides helper functions for testing cqa components
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

// WriteComponentFile writes a source artifact into dir and returns its path
func WriteComponentFile(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("Failed to write test component %s: %v", name, err)
	}
	return path
}

// IssueWithRule returns the first issue carrying the given rule ID, or nil
func IssueWithRule(issues []domain.Issue, ruleID string) *domain.Issue {
	for i := range issues {
		if issues[i].RuleID == ruleID {
			return &issues[i]
		}
	}
	return nil
}

// CountBySeverity counts the issues of one severity
func CountBySeverity(issues []domain.Issue, severity domain.Severity) int {
	count := 0
	for _, issue := range issues {
		if issue.Severity == severity {
			count++
		}
	}
	return count
}
