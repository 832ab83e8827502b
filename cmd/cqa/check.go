package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/IjaIjb/code-quality-analyzer/app"
	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/service"
	"github.com/spf13/cobra"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkMinScore       int
	checkMaxErrors      int
	checkFailOnWarnings bool
	checkVerbose        bool
	checkJSON           bool
	checkConfigPath     string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Fast quality gate for CI/CD pipelines",
		Long: `Run quality gates against configurable thresholds for CI/CD integration.

Exit codes:
  0 - All gates pass
  1 - Quality threshold(s) violated
  2 - Analysis error (file not found, unreadable input, etc.)

Examples:
  # Fail when any component scores below 70
  cqa check --min-score 70 src/

  # Fail on any error-severity issue
  cqa check --max-errors 0 src/

  # JSON output for machine parsing
  cqa check --json src/`,
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&checkMinScore, "min-score", 0,
		"Minimum acceptable overall score per file (0 = disabled)")
	cmd.Flags().IntVar(&checkMaxErrors, "max-errors", -1,
		"Maximum allowed error-severity issues (-1 = disabled)")
	cmd.Flags().BoolVar(&checkFailOnWarnings, "fail-on-warnings", false,
		"Fail when any warning-severity issue is present")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false,
		"Show detailed output")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &CheckExitError{Code: 2, Message: "no paths specified"}
	}

	cfg, err := loadAnalysisConfig(checkConfigPath, args[0])
	if err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	// Config thresholds apply when the flags are not set explicitly
	if !cmd.Flags().Changed("min-score") && cfg.Check.MinScore > 0 {
		checkMinScore = cfg.Check.MinScore
	}
	if !cmd.Flags().Changed("max-errors") {
		checkMaxErrors = cfg.Check.MaxErrors
	}

	pm := service.NewProgressManager(!checkJSON)
	defer pm.Close()

	uc, err := buildAnalyzeUseCase(cfg, pm, false)
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	req := domain.AnalysisRequest{
		Paths:           args,
		Recursive:       cfg.Analysis.Recursive,
		IncludePatterns: cfg.Analysis.IncludePatterns,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}

	result, err := app.NewCheckUseCase(uc).Execute(context.Background(), req, app.CheckThresholds{
		MinScore:       checkMinScore,
		MaxErrors:      checkMaxErrors,
		FailOnWarnings: checkFailOnWarnings,
	})
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	if checkJSON {
		return outputCheckJSON(result)
	}
	return outputCheckText(result)
}

func outputCheckText(result *domain.CheckResult) error {
	if result.Passed {
		fmt.Println("PASS: All quality gates passed")
		if checkVerbose {
			fmt.Printf("  Files analyzed: %d\n", result.Summary.FilesAnalyzed)
			fmt.Printf("  Total issues:   %d\n", result.Summary.TotalIssues)
			fmt.Printf("  Lowest score:   %d (%s)\n", result.Summary.LowestScore, result.Summary.LowestGrade)
			fmt.Printf("  Duration:       %dms\n", result.Duration)
		}
		return nil
	}

	fmt.Println("FAIL: Quality gate failed")
	fmt.Printf("  Violations: %d\n", result.Summary.TotalViolations)

	for _, v := range result.Violations {
		fmt.Printf("  [%s] %s: %s (actual %s, threshold %s)\n",
			severityLabel(v.Severity), v.Rule, v.Message, v.Actual, v.Threshold)
		if checkVerbose && v.File != "" {
			fmt.Printf("         at %s\n", v.File)
		}
	}

	if checkVerbose {
		fmt.Printf("\nSummary:\n")
		fmt.Printf("  Files: %d\n", result.Summary.FilesAnalyzed)
		fmt.Printf("  Issues: %d (%d errors)\n", result.Summary.TotalIssues, result.Summary.TotalErrors)
		fmt.Printf("  Average score: %.1f\n", result.Summary.AverageScore)
		fmt.Printf("  Duration: %dms\n", result.Duration)
	}

	return &CheckExitError{Code: 1, Message: ""}
}

func severityLabel(severity string) string {
	if severity == "warning" {
		return "WARN"
	}
	return "ERROR"
}

func outputCheckJSON(result *domain.CheckResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to encode JSON: %v", err)}
	}

	if !result.Passed {
		return &CheckExitError{Code: 1, Message: ""}
	}
	return nil
}
