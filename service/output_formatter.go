package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct {
	// ShowDetails controls whether text reports list every issue
	ShowDetails bool
}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// NewOutputFormatterWithDetails creates a formatter including per-issue detail
func NewOutputFormatterWithDetails(showDetails bool) *OutputFormatterImpl {
	return &OutputFormatterImpl{ShowDetails: showDetails}
}

// Write writes the analysis response in the specified format
func (f *OutputFormatterImpl) Write(response *domain.AnalysisResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return f.writeJSON(response, writer)
	case domain.OutputFormatYAML:
		return f.writeYAML(response, writer)
	case domain.OutputFormatCSV:
		return f.writeCSV(response, writer)
	case domain.OutputFormatText:
		return f.writeText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// writeJSON emits the response as an indented structural mirror
func (f *OutputFormatterImpl) writeJSON(response *domain.AnalysisResponse, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return domain.NewOutputError("failed to encode JSON output", err)
	}
	return nil
}

func (f *OutputFormatterImpl) writeYAML(response *domain.AnalysisResponse, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	defer encoder.Close()
	if err := encoder.Encode(response); err != nil {
		return domain.NewOutputError("failed to encode YAML output", err)
	}
	return nil
}

// writeCSV emits one row per analyzed file
func (f *OutputFormatterImpl) writeCSV(response *domain.AnalysisResponse, writer io.Writer) error {
	w := csv.NewWriter(writer)
	header := []string{
		"name", "path", "component_type", "lines",
		"errors", "warnings", "info", "total_issues",
		"complexity", "maintainability", "testability", "performance",
		"overall_score", "grade",
	}
	if err := w.Write(header); err != nil {
		return domain.NewOutputError("failed to write CSV header", err)
	}

	for _, file := range response.Files {
		result := file.Result
		row := []string{
			file.Name,
			file.Path,
			string(result.ComponentType),
			strconv.Itoa(result.LineCount),
			strconv.Itoa(result.Summary.Errors),
			strconv.Itoa(result.Summary.Warnings),
			strconv.Itoa(result.Summary.Info),
			strconv.Itoa(result.Summary.Total),
			strconv.Itoa(result.Metrics.Complexity),
			strconv.Itoa(result.Metrics.Maintainability),
			strconv.Itoa(result.Metrics.Testability),
			strconv.Itoa(result.Metrics.Performance),
			strconv.Itoa(result.Metrics.OverallScore),
			result.Metrics.Grade,
		}
		if err := w.Write(row); err != nil {
			return domain.NewOutputError("failed to write CSV row", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return domain.NewOutputError("failed to flush CSV output", err)
	}
	return nil
}

// writeText renders the human-readable report
func (f *OutputFormatterImpl) writeText(response *domain.AnalysisResponse, writer io.Writer) error {
	var sb strings.Builder

	sb.WriteString("Code Quality Analysis\n")
	sb.WriteString("=====================\n\n")

	for _, file := range response.Files {
		f.writeFileText(&sb, &file)
	}

	summary := response.Summary
	sb.WriteString("Summary\n")
	sb.WriteString("-------\n")
	sb.WriteString(fmt.Sprintf("  Files analyzed: %d\n", summary.FilesAnalyzed))
	sb.WriteString(fmt.Sprintf("  Total issues:   %d (%d errors, %d warnings, %d info)\n",
		summary.TotalIssues, summary.TotalErrors, summary.TotalWarnings, summary.TotalInfo))
	if summary.FilesAnalyzed > 1 {
		sb.WriteString(fmt.Sprintf("  Average score:  %.1f\n", summary.AverageScore))
		sb.WriteString(fmt.Sprintf("  Score range:    %d - %d\n", summary.WorstScore, summary.BestScore))
	}

	if len(response.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, warning := range response.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warning))
		}
	}
	if len(response.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		for _, e := range response.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", e))
		}
	}

	if _, err := io.WriteString(writer, sb.String()); err != nil {
		return domain.NewOutputError("failed to write text output", err)
	}
	return nil
}

func (f *OutputFormatterImpl) writeFileText(sb *strings.Builder, file *domain.AnalyzedFile) {
	result := file.Result

	sb.WriteString(file.Name)
	if file.Path != "" && file.Path != file.Name {
		sb.WriteString(fmt.Sprintf(" (%s)", file.Path))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("  Type: %s, %d lines\n", result.ComponentType, result.LineCount))
	sb.WriteString(fmt.Sprintf("  Score: %d (%s)\n", result.Metrics.OverallScore, result.Metrics.Grade))
	for _, dim := range result.Metrics.CoreDimensions() {
		sb.WriteString(fmt.Sprintf("    %-16s %d/10\n", dim.Name+":", dim.Value))
	}
	sb.WriteString(fmt.Sprintf("  Issues: %d (%d errors, %d warnings, %d info)\n",
		result.Summary.Total, result.Summary.Errors, result.Summary.Warnings, result.Summary.Info))

	if f.ShowDetails && len(result.Issues) > 0 {
		for _, issue := range result.Issues {
			sb.WriteString(fmt.Sprintf("    %s:%d:%d  [%s/%s] %s\n",
				file.Name, issue.Line, issue.Column, issue.Severity, issue.RuleID, issue.Message))
			if issue.Suggestion != "" {
				sb.WriteString(fmt.Sprintf("      hint: %s\n", issue.Suggestion))
			}
		}
	}
	sb.WriteString("\n")
}

// WriteComparison renders a two-artifact comparison as text
func (f *OutputFormatterImpl) WriteComparison(result *domain.ComparisonResult, writer io.Writer) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Comparing %s (A) vs %s (B)\n\n", result.NameA, result.NameB))
	sb.WriteString(fmt.Sprintf("  %-16s %8s %8s %8s\n", "metric", "A", "B", "winner"))
	for _, m := range result.Metrics {
		sb.WriteString(fmt.Sprintf("  %-16s %8d %8d %8s\n", m.Metric, m.ValueA, m.ValueB, m.Winner))
	}
	sb.WriteString(fmt.Sprintf("\n  Overall: A=%d B=%d", result.OverallA, result.OverallB))
	switch result.Overall {
	case domain.WinnerTie:
		sb.WriteString("  (tie)\n")
	default:
		sb.WriteString(fmt.Sprintf("  (%s wins)\n", result.Overall))
	}

	if _, err := io.WriteString(writer, sb.String()); err != nil {
		return domain.NewOutputError("failed to write comparison output", err)
	}
	return nil
}
