package analyzer

import (
	"regexp"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

var (
	varKeywordRe     = regexp.MustCompile(`\bvar\s+[\w$]`)
	doubleNegationRe = regexp.MustCompile(`!!\s*[\w$(]`)
	stringConcatRe   = regexp.MustCompile(`["']\s*\+|\+\s*["']`)
)

func init() {
	register(Rule{
		ID:          "no-var",
		Category:    domain.CategorySymbol,
		Severity:    domain.SeverityWarning,
		Description: "var is function-scoped and hoisted; const/let are block-scoped",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			m := varKeywordRe.FindStringIndex(masked)
			if m == nil {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategorySymbol,
				RuleID:     "no-var",
				Message:    "'var' declaration",
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Use 'const' or 'let'",
			}}
		},
	})

	register(Rule{
		ID:          "double-negation",
		Category:    domain.CategorySymbol,
		Severity:    domain.SeverityInfo,
		Description: "Double negation coerces to boolean implicitly",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			m := doubleNegationRe.FindStringIndex(masked)
			if m == nil {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityInfo,
				Category:   domain.CategorySymbol,
				RuleID:     "double-negation",
				Message:    "Double negation '!!'",
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Use Boolean(value) for explicit conversion",
			}}
		},
	})

	register(Rule{
		ID:          "string-concatenation",
		Category:    domain.CategorySymbol,
		Severity:    domain.SeverityInfo,
		Description: "String concatenation chains read worse than template literals",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			// Quotes are blanked in the mask, so match against the raw line
			// and verify the '+' itself sits in code
			m := stringConcatRe.FindStringIndex(line)
			if m == nil {
				return nil
			}
			plus := m[0]
			for i := m[0]; i < m[1]; i++ {
				if line[i] == '+' {
					plus = i
					break
				}
			}
			if scanner.RegionAt(lineNum-1, plus) != RegionCode {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityInfo,
				Category:   domain.CategorySymbol,
				RuleID:     "string-concatenation",
				Message:    "String built by concatenation",
				Line:       lineNum,
				Column:     plus,
				Suggestion: "Use a template literal",
			}}
		},
	})
}
