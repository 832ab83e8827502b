package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/internal/constants"
)

// Engine runs the full diagnostic pipeline. It holds only immutable
// configuration; all per-call state is local to Analyze, so one engine can
// serve concurrent callers.
type Engine struct {
	maxLines           int
	disabledRules      map[string]bool
	disabledCategories map[domain.Category]bool
}

// NewEngine creates an engine with the default input guard
func NewEngine() *Engine {
	return &Engine{maxLines: constants.MaxInputLines}
}

// NewEngineWithLimit creates an engine with a custom line guard.
// limit <= 0 disables the guard.
func NewEngineWithLimit(limit int) *Engine {
	return &Engine{maxLines: limit}
}

// NewEngineWithOptions creates an engine with a custom line guard and
// switched-off rules. Disabled issues never reach scoring, so metrics and
// issue lists stay consistent.
func NewEngineWithOptions(limit int, disabledRules []string, disabledCategories []string) *Engine {
	e := &Engine{maxLines: limit}
	if len(disabledRules) > 0 {
		e.disabledRules = make(map[string]bool, len(disabledRules))
		for _, id := range disabledRules {
			e.disabledRules[id] = true
		}
	}
	if len(disabledCategories) > 0 {
		e.disabledCategories = make(map[domain.Category]bool, len(disabledCategories))
		for _, name := range disabledCategories {
			e.disabledCategories[domain.Category(name)] = true
		}
	}
	return e
}

func (e *Engine) ruleDisabled(rule Rule) bool {
	return e.disabledRules[rule.ID] || e.disabledCategories[rule.Category]
}

// Analyze produces the complete diagnostic report for one artifact.
// It is a pure function of the input text: the same text always yields the
// same ordered issue list, metrics, and summary.
func (e *Engine) Analyze(source string) (*domain.AnalysisResult, []string, error) {
	if !utf8.ValidString(source) {
		return nil, nil, domain.NewInvalidInputError("source is not valid UTF-8 text", nil)
	}

	lines := strings.Split(source, "\n")
	if e.maxLines > 0 && len(lines) > e.maxLines {
		return nil, nil, domain.NewInvalidInputError(
			fmt.Sprintf("input has %d lines, limit is %d", len(lines), e.maxLines), nil)
	}

	scanner := NewSourceScanner(lines)
	ctx := ExtractContext(scanner)

	// Structural validation runs first so syntax issues lead the report
	var issues []domain.Issue
	if !e.disabledCategories[domain.CategorySyntax] {
		issues = ValidateStructure(scanner)
	}

	var faults []string
	for _, rule := range AllRules() {
		if e.ruleDisabled(rule) {
			continue
		}
		ruleIssues, fault := runRule(rule, scanner, ctx)
		if fault != "" {
			faults = append(faults, fault)
			continue
		}
		issues = append(issues, ruleIssues...)
	}

	for i := range issues {
		issues[i].ID = issueID(issues[i], i)
	}

	result := &domain.AnalysisResult{
		ComponentName: ctx.ComponentName,
		ComponentType: ctx.ComponentType,
		Issues:        issues,
		Metrics:       Score(scanner, issues),
		Summary:       Summarize(issues),
		LineCount:     len(lines),
	}
	return result, faults, nil
}

// runRule executes one rule with fault isolation: a panicking check skips
// that rule's contribution and reports the fault instead of aborting the
// whole analysis.
func runRule(rule Rule, scanner *SourceScanner, ctx *Context) (issues []domain.Issue, fault string) {
	defer func() {
		if r := recover(); r != nil {
			issues = nil
			fault = fmt.Sprintf("rule %s/%s failed: %v", rule.Category, rule.ID, r)
		}
	}()

	if rule.CheckFile != nil {
		return rule.CheckFile(scanner, ctx), ""
	}
	for idx, line := range scanner.Lines() {
		issues = append(issues, rule.CheckLine(line, scanner.Masked(idx), idx+1, scanner, ctx)...)
	}
	return issues, ""
}

// issueID builds the composite key: category + rule + position + sequence.
// The sequence component guarantees uniqueness when two rules hit the same
// position.
func issueID(issue domain.Issue, seq int) string {
	return fmt.Sprintf("%s-%s-%d-%d-%d", issue.Category, issue.RuleID, issue.Line, issue.Column, seq)
}

// Summarize counts issues by severity and category
func Summarize(issues []domain.Issue) domain.Summary {
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
