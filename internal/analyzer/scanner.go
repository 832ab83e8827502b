// Package analyzer implements the heuristic diagnostic engine: a lightweight
// tokenizer, a structural bracket validator, a semantic context extractor, a
// categorized rule catalog, and the metrics/scoring calculations.
package analyzer

import "strings"

// Region classifies a character position within a source line
type Region int

const (
	RegionCode Region = iota
	RegionString
	RegionComment
	RegionMarkup
)

// SourceScanner classifies each character of the input into code, string,
// comment, or markup regions. The classification is heuristic (quote and
// comment marker counting, not a real lexer); it exists behind this type so
// it can be swapped for a proper tokenizer without touching rule logic.
type SourceScanner struct {
	lines   []string
	regions [][]Region
	masked  []string
}

// NewSourceScanner scans all lines up front and caches per-line region maps
func NewSourceScanner(lines []string) *SourceScanner {
	s := &SourceScanner{
		lines:   lines,
		regions: make([][]Region, len(lines)),
		masked:  make([]string, len(lines)),
	}
	s.scan()
	return s
}

// Lines returns the raw input lines
func (s *SourceScanner) Lines() []string {
	return s.lines
}

// RegionAt returns the region of column col on 0-based line idx.
// Out-of-range positions report RegionCode.
func (s *SourceScanner) RegionAt(idx, col int) Region {
	if idx < 0 || idx >= len(s.regions) {
		return RegionCode
	}
	row := s.regions[idx]
	if col < 0 || col >= len(row) {
		return RegionCode
	}
	return row[col]
}

// Masked returns line idx with every non-code character replaced by a space.
// Rules match against this view so string, comment, and markup content is
// uniformly exempt from line-based checks.
func (s *SourceScanner) Masked(idx int) string {
	if idx < 0 || idx >= len(s.masked) {
		return ""
	}
	return s.masked[idx]
}

// MaskedWithMarkup returns line idx with string and comment characters
// blanked but markup kept. Markup-aware rules (accessibility, keys) need to
// see the tags the default mask hides.
func (s *SourceScanner) MaskedWithMarkup(idx int) string {
	if idx < 0 || idx >= len(s.lines) {
		return ""
	}
	line := s.lines[idx]
	var b strings.Builder
	b.Grow(len(line))
	for col := 0; col < len(line); col++ {
		switch s.regions[idx][col] {
		case RegionString, RegionComment:
			b.WriteByte(' ')
		default:
			b.WriteByte(line[col])
		}
	}
	return b.String()
}

func (s *SourceScanner) scan() {
	inBlockComment := false
	// Markup depth persists across lines so a tag whose attributes span
	// several lines keeps its continuation lines out of the code mask
	markupDepth := 0

	for idx, line := range s.lines {
		row := make([]Region, len(line))
		var quote byte // active quote char, 0 when outside a string
		inLineComment := false

		for col := 0; col < len(line); col++ {
			ch := line[col]

			switch {
			case inBlockComment:
				row[col] = RegionComment
				if ch == '*' && col+1 < len(line) && line[col+1] == '/' {
					row[col+1] = RegionComment
					col++
					inBlockComment = false
				}

			case inLineComment:
				row[col] = RegionComment

			case quote != 0:
				row[col] = RegionString
				if ch == '\\' && col+1 < len(line) {
					// Escaped character stays inside the string
					row[col+1] = RegionString
					col++
				} else if ch == quote {
					quote = 0
				}

			case ch == '\'' || ch == '"' || ch == '`':
				row[col] = RegionString
				quote = ch

			case ch == '/' && col+1 < len(line) && line[col+1] == '/':
				row[col] = RegionComment
				inLineComment = true

			case ch == '/' && col+1 < len(line) && line[col+1] == '*':
				row[col] = RegionComment
				inBlockComment = true

			case ch == '<' && col+1 < len(line) && (isTagStart(line[col+1]) || line[col+1] == '/'):
				markupDepth++
				row[col] = RegionMarkup

			case markupDepth > 0:
				row[col] = RegionMarkup
				if ch == '>' {
					markupDepth--
				}

			default:
				row[col] = RegionCode
			}
		}

		s.regions[idx] = row
		s.masked[idx] = maskLine(line, row)
	}
}

// isTagStart reports whether a byte can open a markup tag name. Comparison
// operators (`a < b`) are followed by whitespace or digits and stay code.
func isTagStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func maskLine(line string, row []Region) string {
	var b strings.Builder
	b.Grow(len(line))
	for col := 0; col < len(line); col++ {
		if row[col] == RegionCode {
			b.WriteByte(line[col])
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
