package analyzer

import (
	"fmt"
	"regexp"

	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/internal/constants"
)

var (
	hookCallRe      = regexp.MustCompile(`\buse[A-Z][\w$]*\s*\(`)
	propDrillRe     = regexp.MustCompile(`\bprops(\.[\w$]+){3,}`)
	componentDeclRe = regexp.MustCompile(`\b(?:function\s+[A-Z][\w$]*\s*\(|(?:const|let)\s+[A-Z][\w$]*\s*=\s*(?:\([^)]*\)|[\w$]+)\s*=>|class\s+[A-Z][\w$]*\s+extends\b)`)
)

func init() {
	register(Rule{
		ID:          "component-too-long",
		Category:    domain.CategoryStructure,
		Severity:    domain.SeverityWarning,
		Description: "Long components are hard to review and test",
		CheckFile: func(scanner *SourceScanner, ctx *Context) []domain.Issue {
			total := len(scanner.Lines())
			if total <= constants.MaxComponentLines {
				return nil
			}
			return []domain.Issue{{
				Severity: domain.SeverityWarning,
				Category: domain.CategoryStructure,
				RuleID:   "component-too-long",
				Message: fmt.Sprintf("Component is %d lines long (limit %d)",
					total, constants.MaxComponentLines),
				Line:       1,
				Column:     0,
				Suggestion: "Split the component into smaller pieces",
			}}
		},
	})

	register(Rule{
		ID:          "too-many-hooks",
		Category:    domain.CategoryStructure,
		Severity:    domain.SeverityWarning,
		Description: "A component using many stateful primitives is doing too much",
		CheckFile: func(scanner *SourceScanner, ctx *Context) []domain.Issue {
			count := 0
			firstLine := 0
			for idx := range scanner.Lines() {
				matches := hookCallRe.FindAllStringIndex(scanner.Masked(idx), -1)
				if len(matches) > 0 && firstLine == 0 {
					firstLine = idx + 1
				}
				count += len(matches)
			}
			if count <= constants.MaxHookCalls {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryStructure,
				RuleID:     "too-many-hooks",
				Message:    fmt.Sprintf("Component calls %d hooks (limit %d)", count, constants.MaxHookCalls),
				Line:       firstLine,
				Column:     0,
				Suggestion: "Extract related state into a custom hook",
			}}
		},
	})

	register(Rule{
		ID:          "prop-drilling",
		Category:    domain.CategoryStructure,
		Severity:    domain.SeverityWarning,
		Description: "Deeply chained prop access suggests the data should be restructured",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			m := propDrillRe.FindStringIndex(masked)
			if m == nil {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryStructure,
				RuleID:     "prop-drilling",
				Message:    fmt.Sprintf("Deep prop access '%s'", masked[m[0]:m[1]]),
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Destructure props or lift the value into context",
			}}
		},
	})

	register(Rule{
		ID:          "multiple-components",
		Category:    domain.CategoryStructure,
		Severity:    domain.SeverityInfo,
		Description: "Multiple component declarations in one artifact",
		CheckFile: func(scanner *SourceScanner, ctx *Context) []domain.Issue {
			count := 0
			secondLine := 0
			for idx := range scanner.Lines() {
				if componentDeclRe.MatchString(scanner.Masked(idx)) {
					count++
					if count == 2 {
						secondLine = idx + 1
					}
				}
			}
			if count < 2 {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityInfo,
				Category:   domain.CategoryStructure,
				RuleID:     "multiple-components",
				Message:    fmt.Sprintf("%d component declarations in one file", count),
				Line:       secondLine,
				Column:     0,
				Suggestion: "Move each component into its own file",
			}}
		},
	})
}
