package app

import (
	"context"
	"fmt"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

// AnalyzeUseCase orchestrates the quality analysis workflow
type AnalyzeUseCase struct {
	service    domain.AnalysisService
	formatter  domain.OutputFormatter
	fileHelper *FileHelper
}

// NewAnalyzeUseCase creates a new analyze use case
func NewAnalyzeUseCase(service domain.AnalysisService, formatter domain.OutputFormatter) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		service:    service,
		formatter:  formatter,
		fileHelper: NewFileHelper(),
	}
}

// Execute resolves the requested paths, runs the analysis, and writes the
// formatted report to the request's output writer.
func (uc *AnalyzeUseCase) Execute(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	files, err := ResolveFilePaths(uc.fileHelper, req.Paths, req.Recursive, req.ExcludePatterns)
	if err != nil {
		return nil, domain.NewFileNotFoundError("failed to collect files", err)
	}
	if len(files) == 0 {
		return nil, domain.NewInvalidInputError("no component files found in the specified paths", nil)
	}
	req.Paths = files

	response, err := uc.service.Analyze(ctx, req)
	if err != nil {
		return nil, domain.NewAnalysisError("quality analysis failed", err)
	}

	if req.OutputWriter != nil {
		if err := uc.formatter.Write(response, req.OutputFormat, req.OutputWriter); err != nil {
			return nil, err
		}
	}

	return response, nil
}

// AnalyzeFile analyzes a single file
func (uc *AnalyzeUseCase) AnalyzeFile(ctx context.Context, filePath string, req domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	exists, err := uc.fileHelper.FileExists(filePath)
	if err != nil {
		return nil, domain.NewFileNotFoundError(filePath, err)
	}
	if !exists {
		return nil, domain.NewFileNotFoundError(filePath, fmt.Errorf("file does not exist"))
	}

	req.Paths = []string{filePath}
	return uc.Execute(ctx, req)
}

// validateRequest validates the analysis request
func (uc *AnalyzeUseCase) validateRequest(req domain.AnalysisRequest) error {
	if len(req.Paths) == 0 {
		return fmt.Errorf("no input paths specified")
	}
	if req.MinScore < 0 || req.MinScore > 100 {
		return fmt.Errorf("min score must be between 0 and 100")
	}
	switch req.OutputFormat {
	case "", domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML, domain.OutputFormatCSV:
	default:
		return fmt.Errorf("unsupported output format: %s", req.OutputFormat)
	}
	return nil
}

// AnalyzeUseCaseBuilder provides a builder pattern for creating AnalyzeUseCase
type AnalyzeUseCaseBuilder struct {
	service    domain.AnalysisService
	formatter  domain.OutputFormatter
	fileHelper *FileHelper
}

// NewAnalyzeUseCaseBuilder creates a new builder
func NewAnalyzeUseCaseBuilder() *AnalyzeUseCaseBuilder {
	return &AnalyzeUseCaseBuilder{}
}

// WithService sets the analysis service
func (b *AnalyzeUseCaseBuilder) WithService(service domain.AnalysisService) *AnalyzeUseCaseBuilder {
	b.service = service
	return b
}

// WithFormatter sets the output formatter
func (b *AnalyzeUseCaseBuilder) WithFormatter(formatter domain.OutputFormatter) *AnalyzeUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithFileHelper sets the file helper
func (b *AnalyzeUseCaseBuilder) WithFileHelper(fileHelper *FileHelper) *AnalyzeUseCaseBuilder {
	b.fileHelper = fileHelper
	return b
}

// Build creates the AnalyzeUseCase with the configured dependencies
func (b *AnalyzeUseCaseBuilder) Build() (*AnalyzeUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("analysis service is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}

	uc := &AnalyzeUseCase{
		service:    b.service,
		formatter:  b.formatter,
		fileHelper: b.fileHelper,
	}
	if uc.fileHelper == nil {
		uc.fileHelper = NewFileHelper()
	}
	return uc, nil
}
