package analyzer

import (
	"fmt"
	"regexp"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

var (
	looseEqualityRe  = regexp.MustCompile(`(?:^|[^=!<>])(==|!=)(?:[^=]|$)`)
	bitwiseInCondRe  = regexp.MustCompile(`\bif\s*\(.*[\w)\]]\s*[&|]\s*[\w(!]`)
	selfAssignmentRe = regexp.MustCompile(`\b([\w$]+)\s*=\s*([\w$]+)\s*([+\-*/%])`)
	nonNullAssertRe  = regexp.MustCompile(`[\w\])]!(?:\.|\[)`)
)

func init() {
	register(Rule{
		ID:          "loose-equality",
		Category:    domain.CategoryOperator,
		Severity:    domain.SeverityWarning,
		Description: "Loose equality coerces operands; strict comparison is predictable",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			var issues []domain.Issue
			for _, m := range looseEqualityRe.FindAllStringSubmatchIndex(masked, -1) {
				op := masked[m[2]:m[3]]
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityWarning,
					Category:   domain.CategoryOperator,
					RuleID:     "loose-equality",
					Message:    fmt.Sprintf("Loose equality '%s'", op),
					Line:       lineNum,
					Column:     m[2],
					Suggestion: fmt.Sprintf("Use '%s=' for strict comparison", op),
				})
			}
			return issues
		},
	})

	register(Rule{
		ID:          "bitwise-in-condition",
		Category:    domain.CategoryOperator,
		Severity:    domain.SeverityWarning,
		Description: "Single & or | inside a condition is usually a mistyped logical operator",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			// Double operators are stripped before the single-operator check
			collapsed := regexp.MustCompile(`&&|\|\|`).ReplaceAllString(masked, "  ")
			m := bitwiseInCondRe.FindStringIndex(collapsed)
			if m == nil {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryOperator,
				RuleID:     "bitwise-in-condition",
				Message:    "Bitwise operator in a boolean condition",
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Use && or || unless bit arithmetic is intended",
			}}
		},
	})

	register(Rule{
		ID:          "compound-assignment",
		Category:    domain.CategoryOperator,
		Severity:    domain.SeverityInfo,
		Description: "Self-assignments read better with compound operators",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			m := selfAssignmentRe.FindStringSubmatchIndex(masked)
			if m == nil {
				return nil
			}
			left := masked[m[2]:m[3]]
			right := masked[m[4]:m[5]]
			if left != right {
				return nil
			}
			op := masked[m[6]:m[7]]
			return []domain.Issue{{
				Severity:   domain.SeverityInfo,
				Category:   domain.CategoryOperator,
				RuleID:     "compound-assignment",
				Message:    fmt.Sprintf("'%s = %s %s ...' can use '%s='", left, right, op, op),
				Line:       lineNum,
				Column:     m[0],
				Suggestion: fmt.Sprintf("Write '%s %s= ...'", left, op),
			}}
		},
	})

	register(Rule{
		ID:          "no-non-null-assertion",
		Category:    domain.CategoryOperator,
		Severity:    domain.SeverityWarning,
		Description: "Non-null assertions silence the exact checks that catch crashes",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			var issues []domain.Issue
			for _, m := range nonNullAssertRe.FindAllStringIndex(masked, -1) {
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityWarning,
					Category:   domain.CategoryOperator,
					RuleID:     "no-non-null-assertion",
					Message:    "Non-null assertion",
					Line:       lineNum,
					Column:     m[0],
					Suggestion: "Narrow the type or use optional chaining",
				})
			}
			return issues
		},
	})
}
