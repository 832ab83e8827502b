package service

import (
	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.AnalysisRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return c.convertToRequest(cfg), nil
}

// LoadDefaultConfig loads the discovered configuration, falling back to the
// built-in defaults when no config file exists
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.AnalysisRequest {
	cfg, err := config.LoadConfigWithTarget("", "")
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return c.convertToRequest(cfg)
}

// MergeConfig merges CLI flags over the file configuration.
// Paths always come from the command arguments.
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.AnalysisRequest, override *domain.AnalysisRequest) *domain.AnalysisRequest {
	merged := *base

	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}

	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.ShowDetails {
		merged.ShowDetails = override.ShowDetails
	}

	if override.MinScore != 0 {
		merged.MinScore = override.MinScore
	}
	if override.SortBy != "" && override.SortBy != domain.SortByScore {
		merged.SortBy = override.SortBy
	}
	if len(override.Filter.Severities) > 0 {
		merged.Filter.Severities = override.Filter.Severities
	}
	if len(override.Filter.Categories) > 0 {
		merged.Filter.Categories = override.Filter.Categories
	}
	if override.Filter.SearchTerm != "" {
		merged.Filter.SearchTerm = override.Filter.SearchTerm
	}

	if len(override.IncludePatterns) > 0 {
		merged.IncludePatterns = override.IncludePatterns
	}
	if len(override.ExcludePatterns) > 0 {
		merged.ExcludePatterns = override.ExcludePatterns
	}

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}
	if override.SessionName != "" {
		merged.SessionName = override.SessionName
	}

	return &merged
}

// convertToRequest converts a Config to an AnalysisRequest
func (c *ConfigurationLoaderImpl) convertToRequest(cfg *config.Config) *domain.AnalysisRequest {
	return &domain.AnalysisRequest{
		// Paths are set by the caller, not from config
		Paths: []string{},

		OutputFormat: domain.OutputFormat(cfg.Output.Format),
		ShowDetails:  cfg.Output.ShowDetails,
		MinScore:     cfg.Output.MinScore,
		SortBy:       domain.SortCriteria(cfg.Output.SortBy),
		Filter:       domain.DefaultFilterCriteria(),

		Recursive:       cfg.Analysis.Recursive,
		IncludePatterns: cfg.Analysis.IncludePatterns,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}
}
