package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/internal/constants"
)

var (
	paramListRe     = regexp.MustCompile(`\b(?:function\s+[\w$]*\s*|\w[\w$]*\s*=\s*)\(([^)]*)\)`)
	consoleCallRe   = regexp.MustCompile(`\bconsole\.(?:log|debug|info|warn)\s*\(`)
	commentedCodeRe = regexp.MustCompile(`^\s*//\s*(?:const |let |var |if\s*\(|return |for\s*\(|[\w$.]+\(.*\);?\s*$)`)
	todoCommentRe   = regexp.MustCompile(`//\s*(TODO|FIXME|HACK)\b`)
	importRe        = regexp.MustCompile(`^\s*import\s+(?:([\w$]+)\s*,?\s*)?(?:\{([^}]*)\})?\s*from\s*`)
)

func init() {
	register(Rule{
		ID:          "duplicate-lines",
		Category:    domain.CategoryMaintainability,
		Severity:    domain.SeverityWarning,
		Description: "Repeated statements are copy-paste debt",
		CheckFile: func(scanner *SourceScanner, ctx *Context) []domain.Issue {
			counts := make(map[string]int)
			lastLine := make(map[string]int)
			for idx := range scanner.Lines() {
				trimmed := strings.TrimSpace(scanner.Masked(idx))
				if len(trimmed) < constants.MinDuplicateLineLength {
					continue
				}
				counts[trimmed]++
				lastLine[trimmed] = idx + 1
			}

			var issues []domain.Issue
			for _, trimmed := range sortedKeysByLine(counts, lastLine) {
				if counts[trimmed] < constants.MinDuplicateOccurrences {
					continue
				}
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityWarning,
					Category:   domain.CategoryMaintainability,
					RuleID:     "duplicate-lines",
					Message:    fmt.Sprintf("Statement repeated %d times", counts[trimmed]),
					Line:       lastLine[trimmed],
					Column:     0,
					Suggestion: "Extract the repeated statement into a helper",
				})
			}
			return issues
		},
	})

	register(Rule{
		ID:          "long-parameter-list",
		Category:    domain.CategoryMaintainability,
		Severity:    domain.SeverityWarning,
		Description: "Long parameter lists are hard to call correctly",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			m := paramListRe.FindStringSubmatchIndex(masked)
			if m == nil || m[2] < 0 {
				return nil
			}
			params := masked[m[2]:m[3]]
			if strings.TrimSpace(params) == "" {
				return nil
			}
			count := strings.Count(params, ",") + 1
			if count <= constants.MaxParameterCount {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityWarning,
				Category:   domain.CategoryMaintainability,
				RuleID:     "long-parameter-list",
				Message:    fmt.Sprintf("%d parameters (limit %d)", count, constants.MaxParameterCount),
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Group the parameters into an options object",
			}}
		},
	})

	register(Rule{
		ID:          "no-console",
		Category:    domain.CategoryMaintainability,
		Severity:    domain.SeverityInfo,
		Description: "Console calls left in shipped components",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			m := consoleCallRe.FindStringIndex(masked)
			if m == nil {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityInfo,
				Category:   domain.CategoryMaintainability,
				RuleID:     "no-console",
				Message:    "Console call",
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Remove the call or route it through a logger",
			}}
		},
	})

	register(Rule{
		ID:          "commented-code",
		Category:    domain.CategoryMaintainability,
		Severity:    domain.SeverityInfo,
		Description: "Commented-out code is dead code",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			// Inspects comment text, so the raw line is intentional here
			m := commentedCodeRe.FindStringIndex(line)
			if m == nil {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityInfo,
				Category:   domain.CategoryMaintainability,
				RuleID:     "commented-code",
				Message:    "Commented-out code",
				Line:       lineNum,
				Column:     strings.Index(line, "//"),
				Suggestion: "Delete it; version control remembers",
			}}
		},
	})

	register(Rule{
		ID:          "todo-comment",
		Category:    domain.CategoryMaintainability,
		Severity:    domain.SeverityInfo,
		Description: "Tracked markers left in source",
		CheckLine: func(line, masked string, lineNum int, scanner *SourceScanner, ctx *Context) []domain.Issue {
			m := todoCommentRe.FindStringSubmatchIndex(line)
			if m == nil {
				return nil
			}
			return []domain.Issue{{
				Severity:   domain.SeverityInfo,
				Category:   domain.CategoryMaintainability,
				RuleID:     "todo-comment",
				Message:    fmt.Sprintf("%s comment", line[m[2]:m[3]]),
				Line:       lineNum,
				Column:     m[0],
				Suggestion: "Link the marker to a tracked task",
			}}
		},
	})

	register(Rule{
		ID:          "unused-import",
		Category:    domain.CategoryMaintainability,
		Severity:    domain.SeverityWarning,
		Description: "Imports that nothing references",
		CheckFile: func(scanner *SourceScanner, ctx *Context) []domain.Issue {
			type importedName struct {
				name string
				line int
				col  int
			}
			var names []importedName
			var body strings.Builder

			for idx, line := range scanner.Lines() {
				m := importRe.FindStringSubmatchIndex(line)
				if m == nil {
					// Markup kept so component usage in tags still counts
					body.WriteString(scanner.MaskedWithMarkup(idx))
					body.WriteByte('\n')
					continue
				}
				if m[2] >= 0 {
					names = append(names, importedName{name: line[m[2]:m[3]], line: idx + 1, col: m[2]})
				}
				if m[4] >= 0 {
					for _, spec := range strings.Split(line[m[4]:m[5]], ",") {
						spec = strings.TrimSpace(spec)
						if spec == "" {
							continue
						}
						// `x as y` binds y locally
						if parts := strings.Split(spec, " as "); len(parts) == 2 {
							spec = strings.TrimSpace(parts[1])
						}
						names = append(names, importedName{name: spec, line: idx + 1, col: strings.Index(line, spec)})
					}
				}
			}

			code := body.String()
			var issues []domain.Issue
			for _, imp := range names {
				re := regexp.MustCompile(`\b` + regexp.QuoteMeta(imp.name) + `\b`)
				if re.MatchString(code) {
					continue
				}
				issues = append(issues, domain.Issue{
					Severity:   domain.SeverityWarning,
					Category:   domain.CategoryMaintainability,
					RuleID:     "unused-import",
					Message:    fmt.Sprintf("Import '%s' is never used", imp.name),
					Line:       imp.line,
					Column:     imp.col,
					Suggestion: "Remove the unused import",
				})
			}
			return issues
		},
	})
}

// sortedKeysByLine orders duplicate candidates by their last occurrence so
// emission order follows source order
func sortedKeysByLine(counts map[string]int, lastLine map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && lastLine[keys[j-1]] > lastLine[keys[j]]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
