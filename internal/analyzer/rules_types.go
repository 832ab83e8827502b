package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

var (
	anyTypeRe       = regexp.MustCompile(`:\s*any\b`)
	typedSourceRe   = regexp.MustCompile(`\binterface\s+[A-Z]|\btype\s+[A-Z][\w$]*\s*=|:\s*(?:string|number|boolean)\b`)
	untypedReturnRe = regexp.MustCompile(`\bfunction\s+[\w$]+\s*\([^)]*\)\s*\{`)
)

func init() {
	register(Rule{
		ID:          "no-any-type",
		Category:    domain.CategoryTypeSafety,
		Severity:    domain.SeverityWarning,
		Description: "Broad any annotations defeat the type checker",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			var issues []domain.Issue
			for _, m := range anyTypeRe.FindAllStringIndex(masked, -1) {
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityWarning,
					Category:   domain.CategoryTypeSafety,
					RuleID:     "no-any-type",
					Message:    "Annotation uses 'any'",
					Line:       lineNum,
					Column:     m[0],
					Suggestion: "Use a concrete type or 'unknown'",
				})
			}
			return issues
		},
	})

	register(Rule{
		ID:          "missing-return-type",
		Category:    domain.CategoryTypeSafety,
		Severity:    domain.SeverityInfo,
		Description: "Typed sources should annotate function return types",
		CheckFile: func(scanner *SourceScanner, ctx *Context) []domain.Issue {
			if !isTypedSource(scanner) {
				return nil
			}
			var issues []domain.Issue
			for idx := range scanner.Lines() {
				masked := scanner.Masked(idx)
				m := untypedReturnRe.FindStringIndex(masked)
				if m == nil {
					continue
				}
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityInfo,
					Category:   domain.CategoryTypeSafety,
					RuleID:     "missing-return-type",
					Message:    "Function declared without a return type",
					Line:       idx + 1,
					Column:     m[0],
					Suggestion: "Annotate the return type",
				})
			}
			return issues
		},
	})

	register(Rule{
		ID:          "no-ts-ignore",
		Category:    domain.CategoryTypeSafety,
		Severity:    domain.SeverityWarning,
		Description: "Suppression directives hide real type errors",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			// Directives live in comments, so this rule reads the raw line
			col := strings.Index(line, "@ts-ignore")
			if col < 0 {
				col = strings.Index(line, "@ts-nocheck")
			}
			if col < 0 {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryTypeSafety,
				RuleID:     "no-ts-ignore",
				Message:    fmt.Sprintf("Type suppression directive '%s'", strings.Fields(line[col:])[0]),
				Line:       lineNum,
				Column:     col,
				Suggestion: "Fix the underlying type error instead of suppressing it",
			}}
		},
	})
}

// isTypedSource reports whether the artifact carries TypeScript annotations
func isTypedSource(scanner *SourceScanner) bool {
	for idx := range scanner.Lines() {
		if typedSourceRe.MatchString(scanner.Masked(idx)) {
			return true
		}
	}
	return false
}
