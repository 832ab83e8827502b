package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

var (
	lowercaseComponentRe = regexp.MustCompile(`\b(?:function\s+([a-z][\w$]*)\s*\(|(?:const|let)\s+([a-z][\w$]*)\s*=\s*(?:\([^)]*\)|[\w$]+)\s*=>)`)
	snakeCaseVarRe       = regexp.MustCompile(`\b(?:const|let|var)\s+([a-z][a-z0-9]*_[a-z0-9_]+)\b`)
	singleLetterVarRe    = regexp.MustCompile(`\b(?:const|let|var)\s+([a-zA-Z])\s*=`)
	handlerPropRe        = regexp.MustCompile(`\bon[A-Z][\w]*=\{([a-z][\w$]*)\}`)
)

func init() {
	register(Rule{
		ID:          "component-name-pascal-case",
		Category:    domain.CategoryNaming,
		Severity:    domain.SeverityWarning,
		Description: "Component declarations that render markup should use PascalCase names",
		CheckFile: func(scanner *SourceScanner, ctx *Context) []domain.Issue {
			if !containsMarkup(scanner) {
				return nil
			}
			var issues []domain.Issue
			for idx := range scanner.Lines() {
				masked := scanner.Masked(idx)
				m := lowercaseComponentRe.FindStringSubmatchIndex(masked)
				if m == nil {
					continue
				}
				name := firstSubmatch(masked, m)
				// Only flag declarations whose body renders markup nearby
				if !rendersMarkup(scanner, idx) {
					continue
				}
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityWarning,
					Category:   domain.CategoryNaming,
					RuleID:     "component-name-pascal-case",
					Message:    fmt.Sprintf("Component '%s' should use a PascalCase name", name),
					Line:       idx + 1,
					Column:     m[0],
					Suggestion: fmt.Sprintf("Rename to '%s'", strings.ToUpper(name[:1])+name[1:]),
				})
			}
			return issues
		},
	})

	register(Rule{
		ID:          "no-snake-case",
		Category:    domain.CategoryNaming,
		Severity:    domain.SeverityInfo,
		Description: "Variables should use camelCase rather than snake_case",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			var issues []domain.Issue
			for _, m := range snakeCaseVarRe.FindAllStringSubmatchIndex(masked, -1) {
				name := masked[m[2]:m[3]]
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityInfo,
					Category:   domain.CategoryNaming,
					RuleID:     "no-snake-case",
					Message:    fmt.Sprintf("Variable '%s' uses snake_case", name),
					Line:       lineNum,
					Column:     m[2],
					Suggestion: "Use camelCase for variable names",
				})
			}
			return issues
		},
	})

	register(Rule{
		ID:          "no-single-letter-name",
		Category:    domain.CategoryNaming,
		Severity:    domain.SeverityInfo,
		Description: "Single-letter bindings outside loop headers hurt readability",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			if strings.Contains(masked, "for (") || strings.Contains(masked, "for(") {
				return nil
			}
			m := singleLetterVarRe.FindStringSubmatchIndex(masked)
			if m == nil {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityInfo,
				Category:   domain.CategoryNaming,
				RuleID:     "no-single-letter-name",
				Message:    fmt.Sprintf("Single-letter name '%s'", masked[m[2]:m[3]]),
				Line:       lineNum,
				Column:     m[2],
				Suggestion: "Use a descriptive name",
			}}
		},
	})

	register(Rule{
		ID:          "handler-naming",
		Category:    domain.CategoryNaming,
		Severity:    domain.SeverityInfo,
		Description: "Event handler props should reference handle-prefixed functions",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			markup := scanner.MaskedWithMarkup(lineNum - 1)
			var issues []domain.Issue
			for _, m := range handlerPropRe.FindAllStringSubmatchIndex(markup, -1) {
				name := markup[m[2]:m[3]]
				if strings.HasPrefix(name, "handle") || strings.HasPrefix(name, "on") {
					continue
				}
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityInfo,
					Category:   domain.CategoryNaming,
					RuleID:     "handler-naming",
					Message:    fmt.Sprintf("Event handler '%s' is not handle-prefixed", name),
					Line:       lineNum,
					Column:     m[2],
					Suggestion: fmt.Sprintf("Rename to 'handle%s'", strings.ToUpper(name[:1])+name[1:]),
				})
			}
			return issues
		},
	})
}

// containsMarkup reports whether any line carries a markup region
func containsMarkup(scanner *SourceScanner) bool {
	for idx, line := range scanner.Lines() {
		for col := range line {
			if scanner.RegionAt(idx, col) == RegionMarkup {
				return true
			}
		}
	}
	return false
}

// rendersMarkup reports whether the declaration at idx has markup within its
// following few lines, a cheap stand-in for "returns JSX"
func rendersMarkup(scanner *SourceScanner, idx int) bool {
	lines := scanner.Lines()
	limit := idx + 12
	if limit > len(lines) {
		limit = len(lines)
	}
	for i := idx; i < limit; i++ {
		for col := range lines[i] {
			if scanner.RegionAt(i, col) == RegionMarkup {
				return true
			}
		}
	}
	return false
}

// firstSubmatch returns the text of the first non-empty submatch
func firstSubmatch(s string, idx []int) string {
	for i := 2; i+1 < len(idx); i += 2 {
		if idx[i] >= 0 {
			return s[idx[i]:idx[i+1]]
		}
	}
	return ""
}
