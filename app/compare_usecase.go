package app

import (
	"fmt"
	"time"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

// CompareUseCase analyzes two artifacts and compares their metrics
type CompareUseCase struct {
	service    domain.AnalysisService
	comparison domain.ComparisonService
	fileHelper *FileHelper
}

// NewCompareUseCase creates a new compare use case
func NewCompareUseCase(service domain.AnalysisService, comparison domain.ComparisonService) *CompareUseCase {
	return &CompareUseCase{
		service:    service,
		comparison: comparison,
		fileHelper: NewFileHelper(),
	}
}

// Execute analyzes both files and compares the results
func (uc *CompareUseCase) Execute(pathA, pathB string) (*domain.ComparisonResult, error) {
	fileA, err := uc.analyzeOne(pathA)
	if err != nil {
		return nil, err
	}
	fileB, err := uc.analyzeOne(pathB)
	if err != nil {
		return nil, err
	}
	return uc.comparison.Compare(fileA, fileB)
}

// ExecuteAgainstSession compares the stored baseline for path against a
// fresh analysis of the same file
func (uc *CompareUseCase) ExecuteAgainstSession(store domain.SessionStore, sessionID, path string) (*domain.ComparisonResult, error) {
	session, err := store.Load(sessionID)
	if err != nil {
		return nil, err
	}

	baseline := sessionBaseline(session, path)
	if baseline == nil {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("session %s holds no result for %s", sessionID, path), nil)
	}

	current, err := uc.analyzeOne(path)
	if err != nil {
		return nil, err
	}
	return uc.comparison.Compare(baseline, current)
}

// sessionBaseline picks the stored file matching path. A single-file
// session is usable as a baseline regardless of its recorded path.
func sessionBaseline(session *domain.Session, path string) *domain.AnalyzedFile {
	for i := range session.Files {
		if session.Files[i].Path == path {
			return &session.Files[i]
		}
	}
	if len(session.Files) == 1 {
		return &session.Files[0]
	}
	return nil
}

func (uc *CompareUseCase) analyzeOne(path string) (*domain.AnalyzedFile, error) {
	exists, err := uc.fileHelper.FileExists(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	if !exists {
		return nil, domain.NewFileNotFoundError(path, fmt.Errorf("file does not exist"))
	}

	content, err := uc.fileHelper.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}

	result, err := uc.service.AnalyzeSource(path, string(content))
	if err != nil {
		return nil, err
	}

	return &domain.AnalyzedFile{
		Name:     result.ComponentName,
		Path:     path,
		Result:   result,
		Analyzed: time.Now().Format(time.RFC3339),
	}, nil
}
