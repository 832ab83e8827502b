package analyzer

import (
	"fmt"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

// openBracket is one entry on the validator stack
type openBracket struct {
	symbol byte
	line   int // 1-based
	column int // 0-based
}

var closingFor = map[byte]byte{'{': '}', '[': ']', '(': ')'}
var bracketKind = map[byte]string{'{': "brace", '[': "bracket", '(': "paren"}

// ValidateStructure runs the stack-based bracket matcher over the scanned
// source and returns structural issues in scan order. Only `{ [ (` take part;
// angle-bracket markup tags are excluded because they are ambiguous with
// comparison operators. String, comment, and markup regions are skipped via
// the scanner mask.
func ValidateStructure(scanner *SourceScanner) []domain.Issue {
	var issues []domain.Issue
	var stack []openBracket

	for idx := range scanner.Lines() {
		masked := scanner.Masked(idx)
		for col := 0; col < len(masked); col++ {
			ch := masked[col]
			switch ch {
			case '{', '[', '(':
				stack = append(stack, openBracket{symbol: ch, line: idx + 1, column: col})

			case '}', ']', ')':
				if len(stack) == 0 {
					issues = append(issues, domain.Issue{
						Severity: domain.SeverityError,
						Category: domain.CategorySyntax,
						RuleID:   "unmatched-close",
						Message:  fmt.Sprintf("Unmatched closing '%c'", ch),
						Line:     idx + 1,
						Column:   col,
					})
					continue
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if closingFor[top.symbol] != ch {
					issues = append(issues, domain.Issue{
						Severity: domain.SeverityError,
						Category: domain.CategorySyntax,
						RuleID:   "mismatched-bracket",
						Message: fmt.Sprintf("Mismatched '%c': expected '%c' to close '%c' opened at line %d, column %d",
							ch, closingFor[top.symbol], top.symbol, top.line, top.column),
						Line:       idx + 1,
						Column:     col,
						Suggestion: fmt.Sprintf("Close the '%c' opened at line %d before closing the outer scope", top.symbol, top.line),
					})
				}
			}
		}
	}

	// Every still-open entry reports at its original position
	for _, open := range stack {
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityError,
			Category: domain.CategorySyntax,
			RuleID:   "unclosed-" + bracketKind[open.symbol],
			Message:  fmt.Sprintf("Unclosed '%c' opened at line %d, column %d", open.symbol, open.line, open.column),
			Line:     open.line,
			Column:   open.column,
			Suggestion: fmt.Sprintf("Add the matching '%c'", closingFor[open.symbol]),
		})
	}

	return issues
}
