package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

var (
	imgTagRe       = regexp.MustCompile(`<img\b`)
	inputTagRe     = regexp.MustCompile(`<input\b`)
	headingTagRe   = regexp.MustCompile(`<h([1-6])\b`)
	clickableTagRe = regexp.MustCompile(`<(div|span)\b[^>]*\bonClick\s*=`)
)

func init() {
	register(Rule{
		ID:          "img-missing-alt",
		Category:    domain.CategoryAccessibility,
		Severity:    domain.SeverityError,
		Description: "Images need alternative text",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			markup := scanner.MaskedWithMarkup(lineNum - 1)
			m := imgTagRe.FindStringIndex(markup)
			if m == nil || strings.Contains(markup, "alt=") {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityError,
				Category:   domain.CategoryAccessibility,
				RuleID:     "img-missing-alt",
				Message:    "Image element without alt text",
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Add an alt attribute (empty for decorative images)",
			}}
		},
	})

	register(Rule{
		ID:          "input-missing-label",
		Category:    domain.CategoryAccessibility,
		Severity:    domain.SeverityWarning,
		Description: "Form inputs need an accessible label",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			markup := scanner.MaskedWithMarkup(lineNum - 1)
			m := inputTagRe.FindStringIndex(markup)
			if m == nil {
				return nil
			}
			if strings.Contains(markup, "aria-label") ||
				strings.Contains(markup, "aria-labelledby") ||
				strings.Contains(markup, "id=") {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryAccessibility,
				RuleID:     "input-missing-label",
				Message:    "Input element without an accessible label",
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Associate a label via id or add aria-label",
			}}
		},
	})

	register(Rule{
		ID:          "no-unlabelled-interactive",
		Category:    domain.CategoryAccessibility,
		Severity:    domain.SeverityWarning,
		Description: "Click handlers on non-interactive elements exclude keyboard users",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			markup := scanner.MaskedWithMarkup(lineNum - 1)
			m := clickableTagRe.FindStringSubmatchIndex(markup)
			if m == nil {
				return nil
			}
			if strings.Contains(markup, "role=") || strings.Contains(markup, "tabIndex") {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryAccessibility,
				RuleID:     "no-unlabelled-interactive",
				Message:    fmt.Sprintf("Click handler on <%s> without role or tabIndex", markup[m[2]:m[3]]),
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Use a button, or add role and tabIndex with a key handler",
			}}
		},
	})

	register(Rule{
		ID:          "heading-level-skip",
		Category:    domain.CategoryAccessibility,
		Severity:    domain.SeverityWarning,
		Description: "Heading levels should descend one step at a time",
		CheckFile: func(scanner *SourceScanner, ctx *Context) []domain.Issue {
			var issues []domain.Issue
			previous := 0
			for idx := range scanner.Lines() {
				markup := scanner.MaskedWithMarkup(idx)
				for _, m := range headingTagRe.FindAllStringSubmatchIndex(markup, -1) {
					level := int(markup[m[2]] - '0')
					if previous > 0 && level > previous+1 {
						issues = append(issues, domain.Issue{
							Severity:   domain.SeverityWarning,
							Category:   domain.CategoryAccessibility,
							RuleID:     "heading-level-skip",
							Message:    fmt.Sprintf("Heading level jumps from h%d to h%d", previous, level),
							Line:       idx + 1,
							Column:     m[0],
							Suggestion: fmt.Sprintf("Use h%d or restructure the heading outline", previous+1),
						})
					}
					previous = level
				}
			}
			return issues
		},
	})
}
