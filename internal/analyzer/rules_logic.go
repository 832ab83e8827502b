package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/internal/constants"
)

var (
	magicNumberRe  = regexp.MustCompile(`\b\d{2,}\b`)
	constDeclRe    = regexp.MustCompile(`\bconst\s+[A-Z][A-Z0-9_]*\s*=`)
	emptyBlockRe   = regexp.MustCompile(`(\)|\belse\b)\s*\{\s*\}`)
	conditionRe    = regexp.MustCompile(`\b(?:if|while)\s*\(`)
	boolOperatorRe = regexp.MustCompile(`&&|\|\|`)
	ternaryRe      = regexp.MustCompile(`[^?.]\?[^?.]`)
)

func init() {
	register(Rule{
		ID:          "deep-nesting",
		Category:    domain.CategoryLogic,
		Severity:    domain.SeverityWarning,
		Description: "Deep indentation signals control flow that should be flattened",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			if strings.TrimSpace(masked) == "" {
				return nil
			}
			level := indentLevel(line)
			if level <= constants.MaxNestingDepth {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryLogic,
				RuleID:     "deep-nesting",
				Message:    fmt.Sprintf("Nesting depth %d exceeds %d", level, constants.MaxNestingDepth),
				Line:       lineNum,
				Column:     0,
				Suggestion: "Use early returns or extract helper functions",
			}}
		},
	})

	register(Rule{
		ID:          "magic-number",
		Category:    domain.CategoryLogic,
		Severity:    domain.SeverityInfo,
		Description: "Unnamed numeric literals obscure intent",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			if constDeclRe.MatchString(masked) {
				return nil
			}
			var issues []domain.Issue
			for _, m := range magicNumberRe.FindAllStringIndex(masked, -1) {
				value := masked[m[0]:m[1]]
				if value == "10" || value == "100" || value == "1000" {
					continue
				}
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityInfo,
					Category:   domain.CategoryLogic,
					RuleID:     "magic-number",
					Message:    fmt.Sprintf("Magic number %s", value),
					Line:       lineNum,
					Column:     m[0],
					Suggestion: "Extract into a named constant",
				})
			}
			return issues
		},
	})

	register(Rule{
		ID:          "complex-condition",
		Category:    domain.CategoryLogic,
		Severity:    domain.SeverityWarning,
		Description: "Conditions chaining many boolean operators are hard to follow",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			if !conditionRe.MatchString(masked) {
				return nil
			}
			operators := len(boolOperatorRe.FindAllString(masked, -1))
			if operators < constants.MaxBooleanOperators {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryLogic,
				RuleID:     "complex-condition",
				Message:    fmt.Sprintf("Condition combines %d boolean operators", operators),
				Line:       lineNum,
				Column:     strings.Index(masked, "("),
				Suggestion: "Name the intermediate conditions",
			}}
		},
	})

	register(Rule{
		ID:          "empty-block",
		Category:    domain.CategoryLogic,
		Severity:    domain.SeverityWarning,
		Description: "Empty control-flow blocks are dead weight or missing code",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			m := emptyBlockRe.FindStringIndex(masked)
			if m == nil {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryLogic,
				RuleID:     "empty-block",
				Message:    "Empty block",
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Remove the block or implement it",
			}}
		},
	})

	register(Rule{
		ID:          "nested-ternary",
		Category:    domain.CategoryLogic,
		Severity:    domain.SeverityWarning,
		Description: "Nested ternaries are hard to read",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			matches := ternaryRe.FindAllStringIndex(masked, -1)
			if len(matches) < 2 {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryLogic,
				RuleID:     "nested-ternary",
				Message:    "Nested ternary expression",
				Line:       lineNum,
				Column:     matches[1][0] + 1,
				Suggestion: "Rewrite as if/else or a lookup",
			}}
		},
	})
}

// indentLevel estimates nesting from leading whitespace: one tab or two
// spaces per level
func indentLevel(line string) int {
	spaces := 0
	tabs := 0
	for i := 0; i < len(line); i++ {
		if line[i] == ' ' {
			spaces++
		} else if line[i] == '\t' {
			tabs++
		} else {
			break
		}
	}
	return tabs + spaces/2
}
