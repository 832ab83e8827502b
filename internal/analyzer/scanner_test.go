package analyzer

import (
	"strings"
	"testing"
)

func TestSourceScannerStringRegions(t *testing.T) {
	s := NewSourceScanner([]string{`const selector = "a { b }";`})

	if got := s.RegionAt(0, 18); got != RegionString {
		t.Errorf("expected RegionString inside the literal, got %v", got)
	}
	if masked := s.Masked(0); strings.ContainsAny(masked, "{}") {
		t.Errorf("masked view leaked string content: %q", masked)
	}
	if !strings.HasPrefix(s.Masked(0), "const selector = ") {
		t.Errorf("masked view altered code text: %q", s.Masked(0))
	}
}

func TestSourceScannerEscapedQuote(t *testing.T) {
	s := NewSourceScanner([]string{`const s = "say \" hi {";`})

	if masked := s.Masked(0); strings.Contains(masked, "{") {
		t.Errorf("escape handling ended the string early: %q", masked)
	}
	// The trailing semicolon is code again
	if got := s.RegionAt(0, 23); got != RegionCode {
		t.Errorf("expected code after closing quote, got %v", got)
	}
}

func TestSourceScannerLineComment(t *testing.T) {
	s := NewSourceScanner([]string{`x = 1; // open { here`})

	if got := s.RegionAt(0, 10); got != RegionComment {
		t.Errorf("expected RegionComment after //, got %v", got)
	}
	if masked := s.Masked(0); strings.Contains(masked, "{") {
		t.Errorf("comment content leaked into mask: %q", masked)
	}
}

func TestSourceScannerBlockCommentSpansLines(t *testing.T) {
	s := NewSourceScanner([]string{
		`/* start`,
		`still { inside`,
		`*/ done();`,
	})

	if got := s.RegionAt(1, 6); got != RegionComment {
		t.Errorf("line inside block comment should be comment, got %v", got)
	}
	if strings.TrimSpace(s.Masked(1)) != "" {
		t.Errorf("masked comment line should be blank: %q", s.Masked(1))
	}
	if got := s.RegionAt(2, 3); got != RegionCode {
		t.Errorf("code after */ should be code, got %v", got)
	}
}

func TestSourceScannerMarkupRegions(t *testing.T) {
	s := NewSourceScanner([]string{`return <div>hello</div>;`})

	if got := s.RegionAt(0, 7); got != RegionMarkup {
		t.Errorf("tag open should be markup, got %v", got)
	}
	if masked := s.Masked(0); strings.Contains(masked, "div") {
		t.Errorf("default mask should blank markup: %q", masked)
	}
	if markup := s.MaskedWithMarkup(0); !strings.Contains(markup, "div") {
		t.Errorf("markup view should keep tags: %q", markup)
	}
}

func TestSourceScannerMultiLineTag(t *testing.T) {
	s := NewSourceScanner([]string{
		`return <img`,
		`  src={url}`,
		`/>;`,
	})

	if got := s.RegionAt(1, 2); got != RegionMarkup {
		t.Errorf("attribute on a continuation line classified as %v, want markup", got)
	}
	if masked := s.Masked(1); strings.TrimSpace(masked) != "" {
		t.Errorf("continuation line should mask to blank: %q", masked)
	}
	if got := s.RegionAt(2, 2); got != RegionCode {
		t.Errorf("code after the closing tag classified as %v, want code", got)
	}
}

func TestSourceScannerComparisonIsNotMarkup(t *testing.T) {
	line := `if (a < b) { run(); }`
	s := NewSourceScanner([]string{line})

	col := strings.Index(line, "<")
	if got := s.RegionAt(0, col); got != RegionCode {
		t.Errorf("comparison operator classified as %v, want code", got)
	}
	if masked := s.Masked(0); masked != line {
		t.Errorf("pure code line should mask to itself: %q", masked)
	}
}

func TestSourceScannerOutOfRange(t *testing.T) {
	s := NewSourceScanner([]string{"x"})

	if got := s.RegionAt(5, 0); got != RegionCode {
		t.Errorf("out-of-range line should report code, got %v", got)
	}
	if got := s.RegionAt(0, 99); got != RegionCode {
		t.Errorf("out-of-range column should report code, got %v", got)
	}
	if s.Masked(9) != "" {
		t.Error("out-of-range mask should be empty")
	}
}
