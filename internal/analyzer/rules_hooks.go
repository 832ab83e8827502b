package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

var (
	effectCallRe      = regexp.MustCompile(`\buse(?:Layout)?Effect\s*\(`)
	mapRenderRe       = regexp.MustCompile(`\.map\s*\(`)
	keyAttrRe         = regexp.MustCompile(`\bkey\s*=`)
	conditionalHookRe = regexp.MustCompile(`(?:\bif\s*\(.*|&&\s*|\?\s*)\buse[A-Z][\w$]*\s*\(`)
	subscriptionRe    = regexp.MustCompile(`\b(?:addEventListener|setInterval|setTimeout|subscribe)\s*\(`)
	depsClosingRe     = regexp.MustCompile(`\}\s*,\s*\[`)
)

// sortedNames returns map keys in lexical order so issue order is stable
func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// effectRegion is one useEffect call located by paren balancing over masked lines
type effectRegion struct {
	startLine int // 0-based
	endLine   int // 0-based, inclusive
}

// findEffectRegions locates each effect call and walks forward until its
// opening paren balances out. A region that never closes runs to EOF; the
// structural validator reports that separately.
func findEffectRegions(scanner *SourceScanner) []effectRegion {
	lines := scanner.Lines()
	var regions []effectRegion

	for idx := 0; idx < len(lines); idx++ {
		loc := effectCallRe.FindStringIndex(scanner.Masked(idx))
		if loc == nil {
			continue
		}

		depth := 0
		end := len(lines) - 1
		startCol := loc[1] - 1 // the opening paren
	scanRegion:
		for i := idx; i < len(lines); i++ {
			masked := scanner.Masked(i)
			from := 0
			if i == idx {
				from = startCol
			}
			for col := from; col < len(masked); col++ {
				switch masked[col] {
				case '(':
					depth++
				case ')':
					depth--
					if depth == 0 {
						end = i
						break scanRegion
					}
				}
			}
		}
		regions = append(regions, effectRegion{startLine: idx, endLine: end})
		idx = end
	}

	return regions
}

func init() {
	register(Rule{
		ID:          "missing-key",
		Category:    domain.CategoryHooks,
		Severity:    domain.SeverityError,
		Description: "List rendering without a key attribute breaks reconciliation",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			markup := scanner.MaskedWithMarkup(lineNum - 1)
			m := mapRenderRe.FindStringIndex(markup)
			if m == nil || !strings.Contains(markup, "<") {
				return nil
			}
			if keyAttrRe.MatchString(markup) {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityError,
				Category:   domain.CategoryHooks,
				RuleID:     "missing-key",
				Message:    "List item rendered without a key attribute",
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Add a stable key prop to the rendered element",
			}}
		},
	})

	register(Rule{
		ID:          "missing-dependency-array",
		Category:    domain.CategoryHooks,
		Severity:    domain.SeverityWarning,
		Description: "Effects without a dependency array run on every render",
		CheckFile: func(scanner *SourceScanner, ctx *Context) []domain.Issue {
			var issues []domain.Issue
			for _, region := range findEffectRegions(scanner) {
				closing := scanner.Masked(region.endLine)
				hasDeps := depsClosingRe.MatchString(closing)
				if !hasDeps && region.startLine == region.endLine {
					// Single-line effect: the array sits inside the same call
					hasDeps = strings.Contains(closing, ", [")
				}
				if hasDeps {
					continue
				}
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityWarning,
					Category:   domain.CategoryHooks,
					RuleID:     "missing-dependency-array",
					Message:    "Effect has no dependency array",
					Line:       region.startLine + 1,
					Column:     0,
					Suggestion: "Pass a dependency array as the second argument",
				})
			}
			return issues
		},
	})

	register(Rule{
		ID:          "missing-effect-cleanup",
		Category:    domain.CategoryHooks,
		Severity:    domain.SeverityWarning,
		Description: "Effects that register timers or listeners must return a cleanup",
		CheckFile: func(scanner *SourceScanner, ctx *Context) []domain.Issue {
			var issues []domain.Issue
			for _, region := range findEffectRegions(scanner) {
				subscribes := false
				cleansUp := false
				for i := region.startLine; i <= region.endLine; i++ {
					masked := scanner.Masked(i)
					if subscriptionRe.MatchString(masked) {
						subscribes = true
					}
					if strings.Contains(masked, "return") {
						cleansUp = true
					}
				}
				if !subscribes || cleansUp {
					continue
				}
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityWarning,
					Category:   domain.CategoryHooks,
					RuleID:     "missing-effect-cleanup",
					Message:    "Effect registers a subscription without returning a cleanup",
					Line:       region.startLine + 1,
					Column:     0,
					Suggestion: "Return a function that removes the listener or clears the timer",
				})
			}
			return issues
		},
	})

	register(Rule{
		ID:          "conditional-hook",
		Category:    domain.CategoryHooks,
		Severity:    domain.SeverityError,
		Description: "Stateful primitives must be called unconditionally",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			m := conditionalHookRe.FindStringIndex(masked)
			if m == nil {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityError,
				Category:   domain.CategoryHooks,
				RuleID:     "conditional-hook",
				Message:    "Hook called conditionally",
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Call the hook at the top level and branch on its result",
			}}
		},
	})

	register(Rule{
		ID:          "hook-outside-component",
		Category:    domain.CategoryHooks,
		Severity:    domain.SeverityWarning,
		Description: "Hook calls in an artifact with no recognizable component",
		CheckFile: func(scanner *SourceScanner, ctx *Context) []domain.Issue {
			if ctx.ComponentType != domain.ComponentTypeUnknown {
				return nil
			}
			for idx := range scanner.Lines() {
				if loc := hookCallRe.FindStringIndex(scanner.Masked(idx)); loc != nil {
					return []domain.Issue{{
						Severity:   domain.SeverityWarning,
						Category:   domain.CategoryHooks,
						RuleID:     "hook-outside-component",
						Message:    "Hook called outside a recognizable component or custom hook",
						Line:       idx + 1,
						Column:     loc[0],
						Suggestion: "Move hook calls into a component or use-prefixed function",
					}}
				}
			}
			return nil
		},
	})

	register(Rule{
		ID:          "direct-state-mutation",
		Category:    domain.CategoryHooks,
		Severity:    domain.SeverityError,
		Description: "State variables must be replaced through their setters",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			var issues []domain.Issue
			for _, name := range sortedNames(ctx.StateVariables) {
				re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*(?:=[^=>]|\+\+|--|\.(?:push|pop|splice|sort|reverse)\s*\()`)
				m := re.FindStringIndex(masked)
				if m == nil {
					continue
				}
				// Skip the declaration itself
				if useStateRe.MatchString(masked) {
					continue
				}
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityError,
					Category:   domain.CategoryHooks,
					RuleID:     "direct-state-mutation",
					Message:    fmt.Sprintf("State variable '%s' mutated directly", name),
					Line:       lineNum,
					Column:     m[0],
					Suggestion: "Use the state setter with a new value",
				})
			}
			return issues
		},
	})
}
