package service

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/internal/analyzer"
	"github.com/IjaIjb/code-quality-analyzer/internal/config"
	"github.com/IjaIjb/code-quality-analyzer/internal/version"
)

// AnalysisServiceImpl implements the AnalysisService interface
type AnalysisServiceImpl struct {
	config   *config.Config
	progress domain.ProgressManager
	filter   domain.IssueFilter
	sessions domain.SessionStore
}

// NewAnalysisService creates a new analysis service implementation
func NewAnalysisService(cfg *config.Config) *AnalysisServiceImpl {
	return &AnalysisServiceImpl{
		config: cfg,
		filter: NewIssueFilter(),
	}
}

// NewAnalysisServiceWithProgress creates a new analysis service with progress reporting
func NewAnalysisServiceWithProgress(cfg *config.Config, pm domain.ProgressManager) *AnalysisServiceImpl {
	s := NewAnalysisService(cfg)
	s.progress = pm
	return s
}

// WithSessionStore attaches a session store used when requests ask to persist
func (s *AnalysisServiceImpl) WithSessionStore(store domain.SessionStore) *AnalysisServiceImpl {
	s.sessions = store
	return s
}

// fileAnalysisOutcome carries one file's analysis through the executor
type fileAnalysisOutcome struct {
	file     *domain.AnalyzedFile
	warnings []string
}

// fileAnalysisTask analyzes a single artifact from disk
type fileAnalysisTask struct {
	service *AnalysisServiceImpl
	path    string
	req     domain.AnalysisRequest
}

func (t *fileAnalysisTask) Name() string { return t.path }

func (t *fileAnalysisTask) IsEnabled() bool { return true }

func (t *fileAnalysisTask) Execute(ctx context.Context) (interface{}, error) {
	file, warnings, err := t.service.analyzeFile(t.path, t.req)
	if err != nil {
		return nil, err
	}
	return &fileAnalysisOutcome{file: file, warnings: warnings}, nil
}

// Analyze performs quality analysis on multiple files
func (s *AnalysisServiceImpl) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	var files []domain.AnalyzedFile
	var warnings []string
	var errors []string

	tasks := make([]domain.ExecutableTask, 0, len(req.Paths))
	for _, filePath := range req.Paths {
		tasks = append(tasks, &fileAnalysisTask{service: s, path: filePath, req: req})
	}

	executor := NewParallelExecutorWithProgress(0, 0, s.progress)
	results, err := executor.Execute(ctx, tasks)
	failures := make(map[string]error)
	if err != nil {
		aggErr, ok := err.(*AggregatedError)
		if !ok {
			return nil, fmt.Errorf("analysis cancelled: %w", err)
		}
		// Per-file failures are reported but do not abort the run
		for _, taskErr := range aggErr.Errors {
			failures[taskErr.TaskName] = taskErr.Err
		}
	}

	// Results arrive in completion order; re-key them by path so warnings
	// and errors follow the request order regardless of scheduling
	outcomes := make(map[string]*fileAnalysisOutcome, len(results))
	for _, result := range results {
		outcomes[result.TaskName] = result.Value.(*fileAnalysisOutcome)
	}
	for _, filePath := range req.Paths {
		if outcome, ok := outcomes[filePath]; ok {
			warnings = append(warnings, outcome.warnings...)
			files = append(files, *outcome.file)
			continue
		}
		if failure, ok := failures[filePath]; ok {
			errors = append(errors, fmt.Sprintf("[%s] %v", filePath, failure))
		}
	}

	if len(files) == 0 {
		return nil, domain.NewAnalysisError("no files could be analyzed", nil)
	}

	files = s.sortFiles(files, req.SortBy)
	files = s.applyMinScore(files, req.MinScore)

	response := &domain.AnalysisResponse{
		Files:       files,
		Summary:     s.buildSummary(files),
		Warnings:    warnings,
		Errors:      errors,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}

	if req.SessionName != "" && s.sessions != nil {
		if err := s.persistSession(req.SessionName, files); err != nil {
			response.Warnings = append(response.Warnings,
				fmt.Sprintf("failed to persist session %q: %v", req.SessionName, err))
		}
	}

	return response, nil
}

// AnalyzeSource analyzes a single in-memory source artifact
func (s *AnalysisServiceImpl) AnalyzeSource(name, source string) (*domain.AnalysisResult, error) {
	result, _, err := s.engine().Analyze(source)
	if err != nil {
		return nil, err
	}
	if result.ComponentName == "" {
		result.ComponentName = name
	}
	return result, nil
}

func (s *AnalysisServiceImpl) engine() *analyzer.Engine {
	return analyzer.NewEngineWithOptions(
		s.config.Analysis.MaxInputLines,
		s.config.Rules.Disabled,
		s.config.Rules.DisabledCategories,
	)
}

// analyzeFile reads and analyzes one artifact from disk
func (s *AnalysisServiceImpl) analyzeFile(filePath string, req domain.AnalysisRequest) (*domain.AnalyzedFile, []string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, domain.NewFileNotFoundError(filePath, err)
	}

	result, faults, err := s.engine().Analyze(string(content))
	if err != nil {
		return nil, nil, err
	}

	var warnings []string
	for _, fault := range faults {
		warnings = append(warnings, fmt.Sprintf("[%s] %s", filePath, fault))
	}

	// Issue filtering applies per file so summaries reflect what is shown
	result.Issues = s.filter.Filter(result.Issues, req.Filter)
	result.Summary = s.filter.Summarize(result.Issues)

	name := result.ComponentName
	if name == "" {
		name = filePath
	}

	return &domain.AnalyzedFile{
		Name:     name,
		Path:     filePath,
		Result:   result,
		Analyzed: time.Now().Format(time.RFC3339),
	}, warnings, nil
}

// sortFiles orders results by the requested criteria. Name is the tiebreaker
// for every criterion so output order is stable.
func (s *AnalysisServiceImpl) sortFiles(files []domain.AnalyzedFile, sortBy domain.SortCriteria) []domain.AnalyzedFile {
	less := func(a, b *domain.AnalyzedFile) bool {
		switch sortBy {
		case domain.SortByName:
			return a.Name < b.Name
		case domain.SortByIssues:
			if a.Result.Summary.Total != b.Result.Summary.Total {
				return a.Result.Summary.Total > b.Result.Summary.Total
			}
		case domain.SortBySeverity:
			if a.Result.Summary.Errors != b.Result.Summary.Errors {
				return a.Result.Summary.Errors > b.Result.Summary.Errors
			}
			if a.Result.Summary.Warnings != b.Result.Summary.Warnings {
				return a.Result.Summary.Warnings > b.Result.Summary.Warnings
			}
		default: // SortByScore: worst first
			if a.Result.Metrics.OverallScore != b.Result.Metrics.OverallScore {
				return a.Result.Metrics.OverallScore < b.Result.Metrics.OverallScore
			}
		}
		return a.Name < b.Name
	}

	sort.SliceStable(files, func(i, j int) bool { return less(&files[i], &files[j]) })
	return files
}

// applyMinScore drops files scoring at or above the threshold; 0 keeps all
func (s *AnalysisServiceImpl) applyMinScore(files []domain.AnalyzedFile, minScore int) []domain.AnalyzedFile {
	if minScore <= 0 {
		return files
	}
	kept := make([]domain.AnalyzedFile, 0, len(files))
	for _, file := range files {
		if file.Result.Metrics.OverallScore < minScore {
			kept = append(kept, file)
		}
	}
	return kept
}

// buildSummary aggregates statistics across the analyzed files
func (s *AnalysisServiceImpl) buildSummary(files []domain.AnalyzedFile) domain.AnalysisSummary {
	summary := domain.AnalysisSummary{
		FilesAnalyzed: len(files),
		BestScore:     0,
		WorstScore:    100,
	}
	if len(files) == 0 {
		summary.WorstScore = 0
		return summary
	}

	scoreSum := 0
	for _, file := range files {
		result := file.Result
		summary.TotalIssues += result.Summary.Total
		summary.TotalErrors += result.Summary.Errors
		summary.TotalWarnings += result.Summary.Warnings
		summary.TotalInfo += result.Summary.Info

		score := result.Metrics.OverallScore
		scoreSum += score
		if score > summary.BestScore {
			summary.BestScore = score
		}
		if score < summary.WorstScore {
			summary.WorstScore = score
		}
	}
	summary.AverageScore = float64(scoreSum) / float64(len(files))
	return summary
}

func (s *AnalysisServiceImpl) persistSession(name string, files []domain.AnalyzedFile) error {
	return s.sessions.Save(&domain.Session{
		ID:        fmt.Sprintf("%s-%d", name, time.Now().Unix()),
		Name:      name,
		CreatedAt: time.Now(),
		Files:     files,
	})
}
