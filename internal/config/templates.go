package config

import "strconv"

// ProjectType represents the kind of component codebase being analyzed
type ProjectType string

const (
	ProjectTypeGeneric ProjectType = "generic"
	ProjectTypeReact   ProjectType = "react"
	ProjectTypeNext    ProjectType = "next"
	ProjectTypeLibrary ProjectType = "library"
)

// Strictness represents the analysis strictness level
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// ProjectPreset holds file patterns for different project types
type ProjectPreset struct {
	IncludePatterns []string
	ExcludePatterns []string
}

// StrictnessPreset holds gate thresholds for different strictness levels
type StrictnessPreset struct {
	MinScore  int
	MaxErrors int
}

// GetProjectPresets returns presets for different project types
func GetProjectPresets() map[ProjectType]ProjectPreset {
	return map[ProjectType]ProjectPreset{
		ProjectTypeGeneric: {
			IncludePatterns: []string{
				"**/*.js",
				"**/*.ts",
				"**/*.jsx",
				"**/*.tsx",
			},
			ExcludePatterns: []string{
				"**/node_modules/**",
				"**/dist/**",
				"**/build/**",
				"**/*.min.js",
				"**/*.bundle.js",
			},
		},
		ProjectTypeReact: {
			IncludePatterns: []string{
				"**/*.jsx",
				"**/*.tsx",
				"**/*.js",
				"**/*.ts",
			},
			ExcludePatterns: []string{
				"**/node_modules/**",
				"**/dist/**",
				"**/build/**",
				"**/coverage/**",
				"**/*.min.js",
				"**/*.bundle.js",
			},
		},
		ProjectTypeNext: {
			IncludePatterns: []string{
				"**/*.jsx",
				"**/*.tsx",
				"**/*.js",
				"**/*.ts",
			},
			ExcludePatterns: []string{
				"**/node_modules/**",
				"**/.next/**",
				"**/out/**",
				"**/coverage/**",
				"**/*.min.js",
				"**/*.bundle.js",
			},
		},
		ProjectTypeLibrary: {
			IncludePatterns: []string{
				"src/**/*.ts",
				"src/**/*.tsx",
			},
			ExcludePatterns: []string{
				"**/node_modules/**",
				"**/lib/**",
				"**/dist/**",
				"**/__tests__/**",
				"**/*.min.js",
			},
		},
	}
}

// GetStrictnessPresets returns presets for different strictness levels
func GetStrictnessPresets() map[Strictness]StrictnessPreset {
	return map[Strictness]StrictnessPreset{
		StrictnessRelaxed: {
			MinScore:  0, // No score gate
			MaxErrors: 5,
		},
		StrictnessStandard: {
			MinScore:  50,
			MaxErrors: 0,
		},
		StrictnessStrict: {
			MinScore:  75,
			MaxErrors: 0,
		},
	}
}

// GetFullConfigTemplate returns the documented config template as JSONC
func GetFullConfigTemplate(projectType ProjectType, strictness Strictness) string {
	preset := GetProjectPresets()[projectType]
	gate := GetStrictnessPresets()[strictness]

	includePatterns := formatJSONArray(preset.IncludePatterns)
	excludePatterns := formatJSONArray(preset.ExcludePatterns)

	return `{
  // cqa Configuration
  // Documentation: https://github.com/IjaIjb/code-quality-analyzer

  // ============================================================================
  // RULE CATALOG
  // ============================================================================
  // Controls which checks run. Rule IDs and category names are listed by
  // 'cqa analyze --help'.
  "rules": {
    // Rule IDs to skip entirely, e.g. ["no-console", "todo-comment"]
    "disabled": [],

    // Whole categories to skip, e.g. ["accessibility"]
    "disabled_categories": []
  },

  // ============================================================================
  // CI GATE
  // ============================================================================
  // Thresholds enforced by 'cqa check'
  "check": {
    // Fail when any artifact scores below this composite score (0 = off)
    "min_score": ` + strconv.Itoa(gate.MinScore) + `,

    // Fail when error-severity issues exceed this count (-1 = off)
    "max_errors": ` + strconv.Itoa(gate.MaxErrors) + `
  },

  // ============================================================================
  // OUTPUT SETTINGS
  // ============================================================================
  "output": {
    // Output format: "text", "json", "yaml", "csv"
    "format": "text",

    // Show per-issue detail in text reports
    "show_details": true,

    // Sort results by: "score", "name", "issues", "severity"
    "sort_by": "score"
  },

  // ============================================================================
  // ANALYSIS SCOPE
  // ============================================================================
  "analysis": {
    // File patterns to include (glob patterns)
    "include_patterns": ` + includePatterns + `,

    // File patterns to exclude (glob patterns)
    "exclude_patterns": ` + excludePatterns + `,

    // Reject artifacts longer than this many lines (0 = no limit)
    "max_input_lines": 50000
  }
}
`
}

// GetMinimalConfigTemplate returns a minimal config template
func GetMinimalConfigTemplate() string {
	return `{
  // cqa Configuration (minimal)
  // See full options: https://github.com/IjaIjb/code-quality-analyzer

  "check": {
    "min_score": 50,
    "max_errors": 0
  },

  "analysis": {
    "include_patterns": ["**/*.js", "**/*.ts", "**/*.jsx", "**/*.tsx"],
    "exclude_patterns": ["**/node_modules/**", "**/dist/**"]
  }
}
`
}

// formatJSONArray formats a string slice as a JSON array with proper indentation
func formatJSONArray(items []string) string {
	if len(items) == 0 {
		return "[]"
	}

	result := "[\n"
	for i, item := range items {
		result += `      "` + item + `"`
		if i < len(items)-1 {
			result += ","
		}
		result += "\n"
	}
	result += "    ]"
	return result
}
