package analyzer

import (
	"regexp"
	"strings"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

var (
	inlineFuncPropRe = regexp.MustCompile(`\b[\w-]+=\{\s*(?:\([^)]*\)|[\w$]+)\s*=>`)
	inlineObjPropRe  = regexp.MustCompile(`\b[\w-]+=\{\{`)
	indexKeyRe       = regexp.MustCompile(`\bkey=\{\s*(?:index|i|idx)\s*\}`)
	memoWrapperRe    = regexp.MustCompile(`\b(?:React\.)?memo\s*\(`)
	funcPropsDeclRe  = regexp.MustCompile(`\bfunction\s+[A-Z][A-Za-z0-9_]*\s*\(\s*[A-Za-z_${\[]`)
	arrowPropsDeclRe = regexp.MustCompile(`\b(?:const|let|var)\s+[A-Z][A-Za-z0-9_]*\s*(?::[^=]+)?=\s*(?:\(\s*[A-Za-z_${\[][^)]*\)|[A-Za-z_$][\w$]*)\s*=>`)
)

// propsComponentDecl finds the first component declaration carrying at least
// one parameter. Returns -1 when the file has none.
func propsComponentDecl(scanner *SourceScanner) (line, col int) {
	for idx := range scanner.Lines() {
		masked := scanner.Masked(idx)
		if m := funcPropsDeclRe.FindStringIndex(masked); m != nil {
			return idx, m[0]
		}
		if m := arrowPropsDeclRe.FindStringIndex(masked); m != nil {
			return idx, m[0]
		}
	}
	return -1, 0
}

func init() {
	register(Rule{
		ID:          "inline-function-prop",
		Category:    domain.CategoryPerformance,
		Severity:    domain.SeverityWarning,
		Description: "Inline arrow functions in render position defeat memoization",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			markup := scanner.MaskedWithMarkup(lineNum - 1)
			if !strings.Contains(markup, "<") {
				return nil
			}
			var issues []domain.Issue
			for _, m := range inlineFuncPropRe.FindAllStringIndex(markup, -1) {
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityWarning,
					Category:   domain.CategoryPerformance,
					RuleID:     "inline-function-prop",
					Message:    "Inline function literal passed as a prop",
					Line:       lineNum,
					Column:     m[0],
					Suggestion: "Hoist the handler or wrap it in useCallback",
				})
			}
			return issues
		},
	})

	register(Rule{
		ID:          "inline-object-prop",
		Category:    domain.CategoryPerformance,
		Severity:    domain.SeverityWarning,
		Description: "Inline object literals in render position allocate every render",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			markup := scanner.MaskedWithMarkup(lineNum - 1)
			if !strings.Contains(markup, "<") {
				return nil
			}
			m := inlineObjPropRe.FindStringIndex(markup)
			if m == nil {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryPerformance,
				RuleID:     "inline-object-prop",
				Message:    "Inline object literal passed as a prop",
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Hoist the object or memoize it with useMemo",
			}}
		},
	})

	register(Rule{
		ID:          "unmemoized-component",
		Category:    domain.CategoryPerformance,
		Severity:    domain.SeverityInfo,
		Description: "Pure props-only components re-render with every parent render",
		CheckFile: func(scanner *SourceScanner, ctx *Context) []domain.Issue {
			if ctx.ComponentType != domain.ComponentTypeFunctional {
				return nil
			}
			rendersMarkup := false
			for idx := range scanner.Lines() {
				masked := scanner.Masked(idx)
				if memoWrapperRe.MatchString(masked) {
					return nil
				}
				// A component with hook state re-renders on its own; memo
				// alone would not stabilize it
				if hookCallRe.MatchString(masked) {
					return nil
				}
				if strings.Contains(scanner.MaskedWithMarkup(idx), "<") {
					rendersMarkup = true
				}
			}
			line, col := propsComponentDecl(scanner)
			if !rendersMarkup || line < 0 {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityInfo,
				Category:   domain.CategoryPerformance,
				RuleID:     "unmemoized-component",
				Message:    "Props-only component is not memoized",
				Line:       line + 1,
				Column:     col,
				Suggestion: "Wrap the component in React.memo to skip re-renders on unchanged props",
			}}
		},
	})

	register(Rule{
		ID:          "index-as-key",
		Category:    domain.CategoryPerformance,
		Severity:    domain.SeverityWarning,
		Description: "Array indexes make unstable list keys",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			markup := scanner.MaskedWithMarkup(lineNum - 1)
			m := indexKeyRe.FindStringIndex(markup)
			if m == nil {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryPerformance,
				RuleID:     "index-as-key",
				Message:    "Array index used as list key",
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Key on a stable identifier from the data",
			}}
		},
	})
}
