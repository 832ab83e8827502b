package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// SortCriteria represents the criteria for sorting analyzed files
type SortCriteria string

const (
	SortByScore    SortCriteria = "score"
	SortByName     SortCriteria = "name"
	SortByIssues   SortCriteria = "issues"
	SortBySeverity SortCriteria = "severity"
)

// ComponentType classifies the analyzed artifact
type ComponentType string

const (
	ComponentTypeFunctional ComponentType = "functional"
	ComponentTypeClass      ComponentType = "class"
	ComponentTypeUnknown    ComponentType = "unknown"
)

// Metrics holds the bounded quality dimensions for one artifact.
// Core dimensions are clamped to [1,10]; extension dimensions to [0,10].
type Metrics struct {
	Complexity      int `json:"complexity" yaml:"complexity"`
	Maintainability int `json:"maintainability" yaml:"maintainability"`
	Testability     int `json:"testability" yaml:"testability"`
	Performance     int `json:"performance" yaml:"performance"`

	NamingQuality        int `json:"naming_quality" yaml:"naming_quality"`
	StructureQuality     int `json:"structure_quality" yaml:"structure_quality"`
	SyntaxQuality        int `json:"syntax_quality" yaml:"syntax_quality"`
	TypeQuality          int `json:"type_quality" yaml:"type_quality"`
	OperatorQuality      int `json:"operator_quality" yaml:"operator_quality"`
	SymbolQuality        int `json:"symbol_quality" yaml:"symbol_quality"`
	AccessibilityQuality int `json:"accessibility_quality" yaml:"accessibility_quality"`

	// OverallScore is the weighted composite on a 0-100 scale
	OverallScore int `json:"overall_score" yaml:"overall_score"`

	// Grade is the letter label derived from OverallScore
	Grade string `json:"grade" yaml:"grade"`
}

// CoreDimensions returns the four core metric values keyed by name,
// in a fixed order suitable for comparison output.
func (m Metrics) CoreDimensions() []MetricValue {
	return []MetricValue{
		{Name: "complexity", Value: m.Complexity},
		{Name: "maintainability", Value: m.Maintainability},
		{Name: "testability", Value: m.Testability},
		{Name: "performance", Value: m.Performance},
	}
}

// MetricValue is one named metric reading
type MetricValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AnalysisResult is the complete diagnostic report for one artifact.
// It owns its issues and is constructed exactly once per analysis.
type AnalysisResult struct {
	ComponentName string        `json:"component_name,omitempty" yaml:"component_name,omitempty"`
	ComponentType ComponentType `json:"component_type" yaml:"component_type"`

	Issues  []Issue `json:"issues" yaml:"issues"`
	Metrics Metrics `json:"metrics" yaml:"metrics"`
	Summary Summary `json:"summary" yaml:"summary"`

	// LineCount is the number of lines scanned
	LineCount int `json:"line_count" yaml:"line_count"`
}

// AnalyzedFile pairs a source artifact with its analysis result
type AnalyzedFile struct {
	Name     string          `json:"name"`
	Path     string          `json:"path,omitempty"`
	Content  string          `json:"content,omitempty"`
	Result   *AnalysisResult `json:"result"`
	Analyzed string          `json:"analyzed_at,omitempty"`
}

// AnalysisRequest represents a request for quality analysis
type AnalysisRequest struct {
	// Input files or directories to analyze
	Paths []string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	ShowDetails  bool

	// Filtering and sorting
	MinScore int
	SortBy   SortCriteria
	Filter   FilterCriteria

	// Configuration
	ConfigPath string

	// Analysis options
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string

	// Session persistence (empty = do not persist)
	SessionName string
}

// AnalysisSummary aggregates statistics across analyzed files
type AnalysisSummary struct {
	FilesAnalyzed int     `json:"files_analyzed" yaml:"files_analyzed"`
	TotalIssues   int     `json:"total_issues" yaml:"total_issues"`
	TotalErrors   int     `json:"total_errors" yaml:"total_errors"`
	TotalWarnings int     `json:"total_warnings" yaml:"total_warnings"`
	TotalInfo     int     `json:"total_info" yaml:"total_info"`
	AverageScore  float64 `json:"average_score" yaml:"average_score"`
	BestScore     int     `json:"best_score" yaml:"best_score"`
	WorstScore    int     `json:"worst_score" yaml:"worst_score"`
}

// AnalysisResponse represents the complete multi-file analysis output
type AnalysisResponse struct {
	Files   []AnalyzedFile  `json:"files" yaml:"files"`
	Summary AnalysisSummary `json:"summary" yaml:"summary"`

	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`

	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// AnalysisService defines the core business logic for quality analysis
type AnalysisService interface {
	// Analyze performs quality analysis on the given request
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResponse, error)

	// AnalyzeSource analyzes a single in-memory source artifact
	AnalyzeSource(name, source string) (*AnalysisResult, error)
}

// IssueFilter defines issue aggregation and filtering operations
type IssueFilter interface {
	Summarize(issues []Issue) Summary
	Filter(issues []Issue, criteria FilterCriteria) []Issue
	Stats(all []Issue, filtered []Issue) FilterStats
}

// OutputFormatter defines the interface for formatting analysis results
type OutputFormatter interface {
	Write(response *AnalysisResponse, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader defines the interface for loading configuration
type ConfigurationLoader interface {
	LoadConfig(path string) (*AnalysisRequest, error)
	LoadDefaultConfig() *AnalysisRequest
	MergeConfig(base *AnalysisRequest, override *AnalysisRequest) *AnalysisRequest
}

// ProgressManager creates progress tasks for long-running operations
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	Increment(n int)
	Describe(description string)
	Complete()
}

// ExecutableTask is a unit of work for the parallel executor
type ExecutableTask interface {
	Name() string
	IsEnabled() bool
	Execute(ctx context.Context) (interface{}, error)
}
