package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/internal/version"
)

// CheckThresholds holds the quality gate thresholds
type CheckThresholds struct {
	// MinScore fails files scoring below it; 0 disables the gate
	MinScore int

	// MaxErrors fails the run when total errors exceed it; -1 disables the gate
	MaxErrors int

	// FailOnWarnings fails the run when any warning-severity issue is present
	FailOnWarnings bool
}

// CheckUseCase evaluates analysis results against quality gate thresholds
type CheckUseCase struct {
	analyze *AnalyzeUseCase
}

// NewCheckUseCase creates a new check use case
func NewCheckUseCase(analyze *AnalyzeUseCase) *CheckUseCase {
	return &CheckUseCase{analyze: analyze}
}

// Execute runs the analysis and evaluates the gate. Exit code semantics:
// 0 all gates pass, 1 a threshold was violated, 2 the analysis itself failed.
func (uc *CheckUseCase) Execute(ctx context.Context, req domain.AnalysisRequest, thresholds CheckThresholds) (*domain.CheckResult, error) {
	startTime := time.Now()

	// The check gate reads raw results; output writing happens in the caller
	req.OutputWriter = nil

	response, err := uc.analyze.Execute(ctx, req)
	if err != nil {
		return &domain.CheckResult{
			Passed:      false,
			ExitCode:    2,
			Violations:  []domain.CheckViolation{},
			Duration:    time.Since(startTime).Milliseconds(),
			GeneratedAt: time.Now().Format(time.RFC3339),
			Version:     version.Version,
		}, err
	}

	result := uc.Evaluate(response, thresholds)
	result.Duration = time.Since(startTime).Milliseconds()
	return result, nil
}

// Evaluate applies the thresholds to an existing analysis response
func (uc *CheckUseCase) Evaluate(response *domain.AnalysisResponse, thresholds CheckThresholds) *domain.CheckResult {
	result := &domain.CheckResult{
		Passed:      true,
		ExitCode:    0,
		Violations:  []domain.CheckViolation{},
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}

	lowestScore := 100
	lowestGrade := ""
	for _, file := range response.Files {
		score := file.Result.Metrics.OverallScore
		if score <= lowestScore {
			lowestScore = score
			lowestGrade = file.Result.Metrics.Grade
		}

		if thresholds.MinScore > 0 && score < thresholds.MinScore {
			result.Passed = false
			result.Violations = append(result.Violations, domain.CheckViolation{
				Rule:      "min-score",
				Severity:  "error",
				Message:   fmt.Sprintf("%s scored %d (%s)", file.Name, score, file.Result.Metrics.Grade),
				File:      file.Path,
				Actual:    strconv.Itoa(score),
				Threshold: strconv.Itoa(thresholds.MinScore),
			})
		}
	}

	totalErrors := response.Summary.TotalErrors
	if thresholds.MaxErrors >= 0 && totalErrors > thresholds.MaxErrors {
		result.Passed = false
		result.Violations = append(result.Violations, domain.CheckViolation{
			Rule:      "max-errors",
			Severity:  "error",
			Message:   fmt.Sprintf("found %d error-severity issues", totalErrors),
			Actual:    strconv.Itoa(totalErrors),
			Threshold: strconv.Itoa(thresholds.MaxErrors),
		})
	}

	totalWarnings := response.Summary.TotalWarnings
	if thresholds.FailOnWarnings && totalWarnings > 0 {
		result.Passed = false
		result.Violations = append(result.Violations, domain.CheckViolation{
			Rule:      "fail-on-warnings",
			Severity:  "error",
			Message:   fmt.Sprintf("found %d warning-severity issues", totalWarnings),
			Actual:    strconv.Itoa(totalWarnings),
			Threshold: "0",
		})
	}

	if !result.Passed {
		result.ExitCode = 1
	}

	result.Summary = domain.CheckSummary{
		FilesAnalyzed:   response.Summary.FilesAnalyzed,
		TotalViolations: len(result.Violations),
		TotalIssues:     response.Summary.TotalIssues,
		TotalErrors:     totalErrors,
		AverageScore:    response.Summary.AverageScore,
		LowestScore:     lowestScore,
		LowestGrade:     lowestGrade,
	}

	return result
}
