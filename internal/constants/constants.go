package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "cqa"

	// ConfigFileName is the default config file name
	ConfigFileName = "cqa.config.json"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "CQA"
)

// Rule thresholds
const (
	// MaxComponentLines is the length above which a component is flagged
	MaxComponentLines = 150

	// MaxHookCalls is the hook count above which a component is flagged
	MaxHookCalls = 8

	// MaxNestingDepth is the deepest indentation level tolerated
	MaxNestingDepth = 4

	// MaxBooleanOperators is the operator count that makes a condition complex
	MaxBooleanOperators = 3

	// MaxParameterCount is the largest parameter list tolerated
	MaxParameterCount = 4

	// MinDuplicateLineLength is the shortest statement considered for
	// duplicate detection; anything shorter is boilerplate
	MinDuplicateLineLength = 12

	// MinDuplicateOccurrences is the repeat count that flags duplication
	MinDuplicateOccurrences = 3
)

// Analysis limits
const (
	// MaxInputLines bounds scan time on adversarially large inputs
	MaxInputLines = 50000
)

// Output format constants
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
	OutputFormatCSV  = "csv"
)
