package main

import (
	"github.com/IjaIjb/code-quality-analyzer/app"
	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/internal/config"
	"github.com/IjaIjb/code-quality-analyzer/service"
)

// loadAnalysisConfig resolves the effective configuration for a run. An empty
// configPath triggers upward discovery from the first target path.
func loadAnalysisConfig(configPath, target string) (*config.Config, error) {
	return config.LoadConfigWithTarget(configPath, target)
}

// buildAnalyzeUseCase wires the analysis pipeline for the CLI commands
func buildAnalyzeUseCase(cfg *config.Config, pm domain.ProgressManager, showDetails bool) (*app.AnalyzeUseCase, error) {
	svc := service.NewAnalysisServiceWithProgress(cfg, pm).
		WithSessionStore(service.NewSessionStore(service.DefaultSessionDir()))

	return app.NewAnalyzeUseCaseBuilder().
		WithService(svc).
		WithFormatter(service.NewOutputFormatterWithDetails(showDetails)).
		Build()
}

// buildCompareUseCase wires the two-artifact comparison pipeline
func buildCompareUseCase(cfg *config.Config) *app.CompareUseCase {
	return app.NewCompareUseCase(
		service.NewAnalysisService(cfg),
		service.NewComparisonService(),
	)
}
