package analyzer

import (
	"regexp"
	"strings"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

// Context holds the lightweight facts extracted from one artifact before the
// rule catalog runs. It is recomputed for every analysis call and threaded
// through rule evaluation as a read-only parameter, never kept on the engine.
type Context struct {
	ComponentName      string
	ComponentType      domain.ComponentType
	StateVariables     map[string]bool
	EffectDependencies map[string]bool
	NestingLevel       int
}

var (
	classComponentRe = regexp.MustCompile(`\bclass\s+([A-Z][A-Za-z0-9_]*)\s+extends\s+`)
	funcComponentRe  = regexp.MustCompile(`\bfunction\s+([A-Z][A-Za-z0-9_]*)\s*\(`)
	arrowComponentRe = regexp.MustCompile(`\b(?:const|let|var)\s+([A-Z][A-Za-z0-9_]*)\s*(?::[^=]+)?=\s*(?:\([^)]*\)|[A-Za-z_$][\w$]*)\s*=>`)
	useStateRe       = regexp.MustCompile(`\bconst\s*\[\s*([A-Za-z_$][\w$]*)\s*,\s*([A-Za-z_$][\w$]*)\s*\]\s*=\s*use\w*State\s*\(`)
	effectDepsRe     = regexp.MustCompile(`use(?:Layout)?Effect\s*\(`)
	identifierRe     = regexp.MustCompile(`[A-Za-z_$][\w$]*`)
)

// ExtractContext performs the single linear pass deriving component identity,
// declared state, effect dependency lists, and peak nesting depth.
func ExtractContext(scanner *SourceScanner) *Context {
	ctx := &Context{
		ComponentType:      domain.ComponentTypeUnknown,
		StateVariables:     make(map[string]bool),
		EffectDependencies: make(map[string]bool),
	}

	depth := 0
	for idx := range scanner.Lines() {
		masked := scanner.Masked(idx)

		// Component identity: first PascalCase declaration wins
		if ctx.ComponentName == "" {
			if m := classComponentRe.FindStringSubmatch(masked); m != nil {
				ctx.ComponentName = m[1]
				ctx.ComponentType = domain.ComponentTypeClass
			} else if m := funcComponentRe.FindStringSubmatch(masked); m != nil {
				ctx.ComponentName = m[1]
				ctx.ComponentType = domain.ComponentTypeFunctional
			} else if m := arrowComponentRe.FindStringSubmatch(masked); m != nil {
				ctx.ComponentName = m[1]
				ctx.ComponentType = domain.ComponentTypeFunctional
			}
		}

		// State declared via two-element destructuring of a state call
		for _, m := range useStateRe.FindAllStringSubmatch(masked, -1) {
			ctx.StateVariables[m[1]] = true
		}

		// Identifiers inside trailing dependency arrays of effect calls
		if effectDepsRe.MatchString(masked) {
			for _, dep := range extractDependencyArray(masked) {
				ctx.EffectDependencies[dep] = true
			}
		}

		// Peak nesting depth from brace balance
		for col := 0; col < len(masked); col++ {
			switch masked[col] {
			case '{':
				depth++
				if depth > ctx.NestingLevel {
					ctx.NestingLevel = depth
				}
			case '}':
				if depth > 0 {
					depth--
				}
			}
		}
	}

	return ctx
}

// extractDependencyArray pulls identifiers out of a trailing `[a, b])` form
func extractDependencyArray(line string) []string {
	end := strings.LastIndex(line, "])")
	if end < 0 {
		return nil
	}
	start := strings.LastIndex(line[:end], "[")
	if start < 0 {
		return nil
	}
	return identifierRe.FindAllString(line[start+1:end], -1)
}
