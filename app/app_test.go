package app

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/internal/config"
	"github.com/IjaIjb/code-quality-analyzer/internal/testutil"
	"github.com/IjaIjb/code-quality-analyzer/service"
)

const goodSource = `function Button() {
  return (
    <button type="button">Click</button>
  );
}
`

const badSource = `function card_widget() {
  var label = "hi";
  console.log(label);
  return <img src="x.png" />;
}
`

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		testutil.WriteComponentFile(t, dir, name, content)
	}
}

func TestFileHelperCollectComponentFiles(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"Button.tsx": goodSource,
		"util.ts":    "export const x = 1;\n",
		"index.js":   "module.exports = {};\n",
		"readme.txt": "not code",
		"styles.css": "body {}",
	})

	helper := NewFileHelper()
	files, err := helper.CollectComponentFiles([]string{tempDir}, true, nil)
	if err != nil {
		t.Fatalf("CollectComponentFiles failed: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("expected 3 component files, got %d: %v", len(files), files)
	}
}

func TestFileHelperExcludePatterns(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"src/Button.tsx":            goodSource,
		"src/Button.test.tsx":       goodSource,
		"node_modules/pkg/index.js": "module.exports = {};\n",
		"dist/bundle.js":            "var a;\n",
	})

	helper := NewFileHelper()
	files, err := helper.CollectComponentFiles(
		[]string{tempDir}, true,
		[]string{"node_modules/", "dist/", "**/*.test.tsx"},
	)
	if err != nil {
		t.Fatalf("CollectComponentFiles failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected only src/Button.tsx, got %v", files)
	}
	if filepath.Base(files[0]) != "Button.tsx" {
		t.Errorf("unexpected file %s", files[0])
	}
}

func TestFileHelperNonRecursive(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"top.tsx":        goodSource,
		"nested/sub.tsx": goodSource,
	})

	helper := NewFileHelper()
	files, err := helper.CollectComponentFiles([]string{tempDir}, false, nil)
	if err != nil {
		t.Fatalf("CollectComponentFiles failed: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "top.tsx" {
		t.Errorf("non-recursive collection returned %v", files)
	}
}

func TestFileHelperIsComponentFile(t *testing.T) {
	helper := NewFileHelper()

	tests := []struct {
		path     string
		expected bool
	}{
		{"test.js", true},
		{"test.jsx", true},
		{"test.ts", true},
		{"test.tsx", true},
		{"test.mjs", true},
		{"test.cjs", true},
		{"test.go", false},
		{"test.css", false},
		{"test.txt", false},
	}
	for _, tt := range tests {
		if got := helper.IsComponentFile(tt.path); got != tt.expected {
			t.Errorf("IsComponentFile(%s) = %v, expected %v", tt.path, got, tt.expected)
		}
	}
}

func TestFileHelperFileExists(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{"a.tsx": goodSource})
	helper := NewFileHelper()

	exists, err := helper.FileExists(filepath.Join(tempDir, "a.tsx"))
	if err != nil || !exists {
		t.Errorf("FileExists on real file = %v, %v", exists, err)
	}
	exists, err = helper.FileExists(filepath.Join(tempDir, "missing.tsx"))
	if err != nil || exists {
		t.Errorf("FileExists on missing file = %v, %v", exists, err)
	}
	exists, err = helper.FileExists(tempDir)
	if err != nil || exists {
		t.Errorf("FileExists on directory = %v, %v", exists, err)
	}
}

func TestResolveFilePathsPassesThroughFiles(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{"a.tsx": goodSource, "b.tsx": badSource})
	a := filepath.Join(tempDir, "a.tsx")
	b := filepath.Join(tempDir, "b.tsx")

	files, err := ResolveFilePaths(NewFileHelper(), []string{a, b}, true, nil)
	if err != nil {
		t.Fatalf("ResolveFilePaths failed: %v", err)
	}
	if len(files) != 2 || files[0] != a || files[1] != b {
		t.Errorf("explicit files not passed through: %v", files)
	}
}

func newAnalyzeUseCase() *AnalyzeUseCase {
	return NewAnalyzeUseCase(
		service.NewAnalysisService(config.DefaultConfig()),
		service.NewOutputFormatter(),
	)
}

func TestAnalyzeUseCaseExecute(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"Button.tsx": goodSource,
		"Card.tsx":   badSource,
	})

	var buf bytes.Buffer
	response, err := newAnalyzeUseCase().Execute(context.Background(), domain.AnalysisRequest{
		Paths:        []string{tempDir},
		Recursive:    true,
		OutputFormat: domain.OutputFormatText,
		OutputWriter: &buf,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if response.Summary.FilesAnalyzed != 2 {
		t.Errorf("FilesAnalyzed = %d, want 2", response.Summary.FilesAnalyzed)
	}
	if buf.Len() == 0 {
		t.Error("no report written to the output writer")
	}
}

func TestAnalyzeUseCaseValidation(t *testing.T) {
	uc := newAnalyzeUseCase()
	ctx := context.Background()

	if _, err := uc.Execute(ctx, domain.AnalysisRequest{}); err == nil {
		t.Error("expected error for empty paths")
	}
	if _, err := uc.Execute(ctx, domain.AnalysisRequest{
		Paths:    []string{"x.tsx"},
		MinScore: 150,
	}); err == nil {
		t.Error("expected error for out-of-range min score")
	}
	if _, err := uc.Execute(ctx, domain.AnalysisRequest{
		Paths:        []string{"x.tsx"},
		OutputFormat: domain.OutputFormat("xml"),
	}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestAnalyzeUseCaseNoFilesFound(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{"readme.md": "# nothing to analyze"})

	_, err := newAnalyzeUseCase().Execute(context.Background(), domain.AnalysisRequest{
		Paths:     []string{tempDir},
		Recursive: true,
	})
	if err == nil {
		t.Fatal("expected error when no component files exist")
	}
}

func TestAnalyzeUseCaseBuilder(t *testing.T) {
	if _, err := NewAnalyzeUseCaseBuilder().Build(); err == nil {
		t.Error("builder accepted missing dependencies")
	}

	uc, err := NewAnalyzeUseCaseBuilder().
		WithService(service.NewAnalysisService(config.DefaultConfig())).
		WithFormatter(service.NewOutputFormatter()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if uc.fileHelper == nil {
		t.Error("builder did not default the file helper")
	}
}

func TestCheckUseCaseEvaluate(t *testing.T) {
	response := &domain.AnalysisResponse{
		Files: []domain.AnalyzedFile{
			{Name: "Good", Result: &domain.AnalysisResult{
				Metrics: domain.Metrics{OverallScore: 95, Grade: "A+"},
			}},
			{Name: "Bad", Path: "src/Bad.tsx", Result: &domain.AnalysisResult{
				Metrics: domain.Metrics{OverallScore: 42, Grade: "D"},
			}},
		},
		Summary: domain.AnalysisSummary{
			FilesAnalyzed: 2,
			TotalIssues:   9,
			TotalErrors:   3,
			AverageScore:  68.5,
		},
	}

	uc := NewCheckUseCase(newAnalyzeUseCase())

	t.Run("passes with gates disabled", func(t *testing.T) {
		result := uc.Evaluate(response, CheckThresholds{MinScore: 0, MaxErrors: -1})
		if !result.Passed || result.ExitCode != 0 {
			t.Errorf("result = passed:%v exit:%d, want pass", result.Passed, result.ExitCode)
		}
		if len(result.Violations) != 0 {
			t.Errorf("unexpected violations: %+v", result.Violations)
		}
	})

	t.Run("min-score violation", func(t *testing.T) {
		result := uc.Evaluate(response, CheckThresholds{MinScore: 70, MaxErrors: -1})
		if result.Passed || result.ExitCode != 1 {
			t.Errorf("result = passed:%v exit:%d, want failure exit 1", result.Passed, result.ExitCode)
		}
		if len(result.Violations) != 1 || result.Violations[0].Rule != "min-score" {
			t.Fatalf("violations = %+v", result.Violations)
		}
		if result.Violations[0].File != "src/Bad.tsx" {
			t.Errorf("violation file = %q", result.Violations[0].File)
		}
	})

	t.Run("max-errors violation", func(t *testing.T) {
		result := uc.Evaluate(response, CheckThresholds{MinScore: 0, MaxErrors: 2})
		if result.Passed {
			t.Error("3 errors passed a max of 2")
		}
		if len(result.Violations) != 1 || result.Violations[0].Rule != "max-errors" {
			t.Fatalf("violations = %+v", result.Violations)
		}
	})

	t.Run("max-errors zero is a real gate", func(t *testing.T) {
		result := uc.Evaluate(response, CheckThresholds{MinScore: 0, MaxErrors: 0})
		if result.Passed {
			t.Error("errors present but max-errors 0 passed")
		}
	})

	t.Run("fail-on-warnings gate", func(t *testing.T) {
		withWarnings := *response
		withWarnings.Summary.TotalWarnings = 4
		result := uc.Evaluate(&withWarnings, CheckThresholds{MinScore: 0, MaxErrors: -1, FailOnWarnings: true})
		if result.Passed {
			t.Error("warnings present but fail-on-warnings passed")
		}
		if len(result.Violations) != 1 || result.Violations[0].Rule != "fail-on-warnings" {
			t.Fatalf("violations = %+v", result.Violations)
		}
		if result.Violations[0].Actual != "4" {
			t.Errorf("Actual = %q, want 4", result.Violations[0].Actual)
		}

		// Gate off: warnings alone never fail the run
		result = uc.Evaluate(&withWarnings, CheckThresholds{MinScore: 0, MaxErrors: -1})
		if !result.Passed {
			t.Error("warnings failed the run with the gate disabled")
		}
	})

	t.Run("summary reflects the run", func(t *testing.T) {
		result := uc.Evaluate(response, CheckThresholds{MinScore: 70, MaxErrors: 0})
		if result.Summary.TotalViolations != 2 {
			t.Errorf("TotalViolations = %d, want 2", result.Summary.TotalViolations)
		}
		if result.Summary.LowestScore != 42 || result.Summary.LowestGrade != "D" {
			t.Errorf("lowest = %d (%s), want 42 (D)", result.Summary.LowestScore, result.Summary.LowestGrade)
		}
	})
}

func TestCompareUseCaseExecute(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"Good.tsx": goodSource,
		"Bad.tsx":  badSource,
	})

	uc := NewCompareUseCase(
		service.NewAnalysisService(config.DefaultConfig()),
		service.NewComparisonService(),
	)

	result, err := uc.Execute(filepath.Join(tempDir, "Good.tsx"), filepath.Join(tempDir, "Bad.tsx"))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.OverallA <= result.OverallB {
		t.Errorf("clean file did not win: A=%d B=%d", result.OverallA, result.OverallB)
	}
	if result.Overall != domain.WinnerA {
		t.Errorf("overall winner = %s, want A", result.Overall)
	}
}

func TestCompareUseCaseMissingFile(t *testing.T) {
	uc := NewCompareUseCase(
		service.NewAnalysisService(config.DefaultConfig()),
		service.NewComparisonService(),
	)
	if _, err := uc.Execute("/does/not/exist.tsx", "/also/missing.tsx"); err == nil {
		t.Fatal("expected error for missing files")
	}
}

type fakeSessionStore struct {
	sessions map[string]*domain.Session
}

func (s *fakeSessionStore) Save(*domain.Session) error { return nil }

func (s *fakeSessionStore) Load(id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.NewSessionError("session not found: "+id, nil)
	}
	return session, nil
}

func (s *fakeSessionStore) List() ([]domain.SessionInfo, error) { return nil, nil }

func (s *fakeSessionStore) Delete(string) error { return nil }

func TestCompareUseCaseAgainstSession(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{"Good.tsx": goodSource})
	goodPath := filepath.Join(tempDir, "Good.tsx")

	baseline := domain.AnalyzedFile{
		Name: "Good",
		Path: goodPath,
		Result: &domain.AnalysisResult{
			Metrics: domain.Metrics{
				Complexity:      1,
				Maintainability: 1,
				Testability:     1,
				Performance:     1,
				OverallScore:    10,
				Grade:           "F",
			},
		},
	}
	store := &fakeSessionStore{sessions: map[string]*domain.Session{
		"base": {ID: "base", Name: "base", Files: []domain.AnalyzedFile{baseline}},
	}}

	uc := NewCompareUseCase(
		service.NewAnalysisService(config.DefaultConfig()),
		service.NewComparisonService(),
	)

	result, err := uc.ExecuteAgainstSession(store, "base", goodPath)
	if err != nil {
		t.Fatalf("ExecuteAgainstSession failed: %v", err)
	}
	if result.Overall != domain.WinnerB {
		t.Errorf("current analysis should beat the weak baseline, winner = %s", result.Overall)
	}

	if _, err := uc.ExecuteAgainstSession(store, "missing", goodPath); err == nil {
		t.Error("expected error for unknown session")
	}

	// Multi-file session without a matching path is ambiguous
	store.sessions["multi"] = &domain.Session{ID: "multi", Files: []domain.AnalyzedFile{baseline, baseline}}
	if _, err := uc.ExecuteAgainstSession(store, "multi", filepath.Join(tempDir, "Other.tsx")); err == nil {
		t.Error("expected error when no stored file matches")
	}
}
