package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/service"
	"github.com/spf13/cobra"
)

var (
	analyzeFormat     string
	analyzeJSON       bool
	analyzeDetails    bool
	analyzeOutputPath string
	analyzeConfigPath string
	analyzeMinScore   int
	analyzeSortBy     string
	analyzeSeverities []string
	analyzeCategories []string
	analyzeSearch     string
	analyzeSession    string
	analyzeFlat       bool
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path...]",
		Short: "Analyze component source files",
		Long: `Analyze React/UI component source files for structural, naming, logic,
hook, accessibility, and performance issues, and score each file.

Examples:
  cqa analyze src/
  cqa analyze --details src/components/Button.tsx
  cqa analyze --format json src/
  cqa analyze --min-score 80 --sort score src/
  cqa analyze --severity error --category hooks src/
  cqa analyze --session release-1.4 src/`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzeFormat, "format", "f", "",
		"Output format: text, json, yaml, csv (default from config)")
	cmd.Flags().BoolVar(&analyzeJSON, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().BoolVarP(&analyzeDetails, "details", "d", false,
		"List every issue in text output")
	cmd.Flags().StringVarP(&analyzeOutputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().IntVar(&analyzeMinScore, "min-score", 0,
		"Only show files scoring below N (0 = show all)")
	cmd.Flags().StringVar(&analyzeSortBy, "sort", "",
		"Sort results by: score, name, issues, severity")
	cmd.Flags().StringSliceVar(&analyzeSeverities, "severity", nil,
		"Only show issues with these severities: error, warning, info")
	cmd.Flags().StringSliceVar(&analyzeCategories, "category", nil,
		"Only show issues in these categories")
	cmd.Flags().StringVar(&analyzeSearch, "search", "",
		"Only show issues matching this search term")
	cmd.Flags().StringVar(&analyzeSession, "session", "",
		"Persist the results as a named session")
	cmd.Flags().BoolVar(&analyzeFlat, "flat", false,
		"Do not recurse into subdirectories")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) (err error) {
	if len(args) == 0 {
		return fmt.Errorf("no paths specified")
	}

	cfg, err := loadAnalysisConfig(analyzeConfigPath, args[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// File config first, then CLI flags on top
	loader := service.NewConfigurationLoader()
	var base *domain.AnalysisRequest
	if analyzeConfigPath != "" {
		base, err = loader.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
	} else {
		base = loader.LoadDefaultConfig()
	}

	req := loader.MergeConfig(base, buildAnalyzeOverride(args))
	if analyzeFlat {
		req.Recursive = false
	}

	writer, cleanup, err := resolveOutputWriter(analyzeOutputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := cleanup(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	req.OutputWriter = writer

	// Progress bars stay off when machine-readable output goes to stdout
	pm := service.NewProgressManager(analyzeOutputPath != "" || req.OutputFormat == domain.OutputFormatText)
	defer pm.Close()

	uc, err := buildAnalyzeUseCase(cfg, pm, req.ShowDetails)
	if err != nil {
		return err
	}

	_, err = uc.Execute(context.Background(), *req)
	return err
}

// buildAnalyzeOverride converts the CLI flags into a request overlay
func buildAnalyzeOverride(paths []string) *domain.AnalysisRequest {
	override := &domain.AnalysisRequest{
		Paths:       paths,
		ShowDetails: analyzeDetails,
		MinScore:    analyzeMinScore,
		SortBy:      domain.SortCriteria(analyzeSortBy),
		ConfigPath:  analyzeConfigPath,
		SessionName: analyzeSession,
	}

	if analyzeJSON {
		override.OutputFormat = domain.OutputFormatJSON
	} else if analyzeFormat != "" {
		override.OutputFormat = domain.OutputFormat(analyzeFormat)
	}

	for _, s := range analyzeSeverities {
		override.Filter.Severities = append(override.Filter.Severities, domain.Severity(s))
	}
	for _, c := range analyzeCategories {
		override.Filter.Categories = append(override.Filter.Categories, domain.Category(c))
	}
	override.Filter.SearchTerm = analyzeSearch

	return override
}

// resolveOutputWriter opens the output target, returning a cleanup func
func resolveOutputWriter(path string) (*os.File, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	cleanup := func() error {
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
		absPath, _ := filepath.Abs(path)
		fmt.Printf("Output saved to: %s\n", absPath)
		return nil
	}
	return f, cleanup, nil
}
