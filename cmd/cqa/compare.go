package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/service"
	"github.com/spf13/cobra"
)

var (
	compareJSON       bool
	compareConfigPath string
	compareSession    string
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <fileA> [fileB]",
		Short: "Compare the quality metrics of two components",
		Long: `Analyze two component files and compare them metric by metric,
or compare one file against its stored session baseline.

Examples:
  cqa compare src/Button.tsx src/LegacyButton.tsx
  cqa compare --json old/Card.tsx new/Card.tsx
  cqa compare --session baseline-20260826 src/Button.tsx`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runCompare,
	}

	cmd.Flags().BoolVar(&compareJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().StringVarP(&compareConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringVar(&compareSession, "session", "",
		"Compare against the stored session with this ID")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadAnalysisConfig(compareConfigPath, args[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	uc := buildCompareUseCase(cfg)

	var result *domain.ComparisonResult
	switch {
	case compareSession != "":
		if len(args) != 1 {
			return fmt.Errorf("--session takes exactly one file to compare against the baseline")
		}
		result, err = uc.ExecuteAgainstSession(sessionStore(), compareSession, args[0])
	case len(args) == 2:
		result, err = uc.Execute(args[0], args[1])
	default:
		return fmt.Errorf("two files are required unless --session is given")
	}
	if err != nil {
		return err
	}

	if compareJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	return service.NewOutputFormatter().WriteComparison(result, os.Stdout)
}
