package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/IjaIjb/code-quality-analyzer/internal/constants"
)

// Default check thresholds for CI gating
const (
	// DefaultCheckMinScore is the composite score below which `cqa check` fails.
	// 0 disables the score gate.
	DefaultCheckMinScore = 0

	// DefaultCheckMaxErrors is the number of error-severity issues tolerated
	// before `cqa check` fails. -1 disables the error gate.
	DefaultCheckMaxErrors = 0
)

// Config represents the main configuration structure
type Config struct {
	// Rules holds rule catalog configuration
	Rules RulesConfig `json:"rules" mapstructure:"rules" yaml:"rules"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Analysis holds file collection and input guard configuration
	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis" yaml:"analysis"`

	// Check holds CI gate thresholds
	Check CheckConfig `json:"check" mapstructure:"check" yaml:"check"`
}

// RulesConfig controls which checks run
type RulesConfig struct {
	// Disabled lists rule IDs to skip entirely
	Disabled []string `json:"disabled" mapstructure:"disabled" yaml:"disabled"`

	// DisabledCategories lists whole categories to skip
	DisabledCategories []string `json:"disabled_categories" mapstructure:"disabled_categories" yaml:"disabled_categories"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml, csv
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// ShowDetails controls whether per-issue detail is printed
	ShowDetails bool `json:"show_details" mapstructure:"show_details" yaml:"show_details"`

	// SortBy specifies how to sort results: score, name, issues, severity
	SortBy string `json:"sort_by" mapstructure:"sort_by" yaml:"sort_by"`

	// MinScore hides results at or above this composite score; 0 shows all
	MinScore int `json:"min_score" mapstructure:"min_score" yaml:"min_score"`
}

// AnalysisConfig holds file collection configuration
type AnalysisConfig struct {
	// IncludePatterns specifies file patterns to include
	IncludePatterns []string `json:"include_patterns" mapstructure:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns specifies file patterns to exclude
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`

	// Recursive controls whether directories are walked recursively
	Recursive bool `json:"recursive" mapstructure:"recursive" yaml:"recursive"`

	// FollowSymlinks controls whether symbolic links are followed
	FollowSymlinks bool `json:"follow_symlinks" mapstructure:"follow_symlinks" yaml:"follow_symlinks"`

	// MaxInputLines rejects artifacts above this line count; 0 disables
	MaxInputLines int `json:"max_input_lines" mapstructure:"max_input_lines" yaml:"max_input_lines"`
}

// CheckConfig holds thresholds for the CI gate command
type CheckConfig struct {
	// MinScore fails the check when any artifact scores below it
	MinScore int `json:"min_score" mapstructure:"min_score" yaml:"min_score"`

	// MaxErrors fails the check when error-severity issues exceed it.
	// -1 disables the gate.
	MaxErrors int `json:"max_errors" mapstructure:"max_errors" yaml:"max_errors"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			Disabled:           []string{},
			DisabledCategories: []string{},
		},
		Output: OutputConfig{
			Format:      "text",
			ShowDetails: false,
			SortBy:      "score",
			MinScore:    0,
		},
		Analysis: AnalysisConfig{
			IncludePatterns: []string{
				"**/*.js", "**/*.ts", "**/*.jsx", "**/*.tsx",
			},
			ExcludePatterns: []string{
				"node_modules",
				"dist",
				"build",
				"out",
				".next",
				".cache",
				"coverage",
				".git",
				"*.min.js",
				"*.bundle.js",
				"*.map",
			},
			Recursive:      true,
			FollowSymlinks: false,
			MaxInputLines:  constants.MaxInputLines,
		},
		Check: CheckConfig{
			MinScore:  DefaultCheckMinScore,
			MaxErrors: DefaultCheckMaxErrors,
		},
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context.
// When no explicit path is given the config file is discovered by walking
// upward from the target.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses one configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		cfg, err := LoadDefaultConfig()
		if err != nil {
			return DefaultConfig(), nil
		}
		return cfg, nil
	}

	// A fresh viper instance per load avoids shared state between callers
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// searchConfigInDirectory searches for configuration files in one directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common locations.
// targetPath is the path being analyzed.
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		constants.ConfigFileName,
		".cqa.json",
		"cqa.yaml",
		"cqa.yml",
		".cqa.yaml",
		".cqa.yml",
	}

	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			// Walk from the target directory up to the filesystem root
			volume := filepath.VolumeName(absPath)
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}

				parent := filepath.Dir(dir)
				if parent == dir ||
					dir == volume ||
					(volume != "" && dir == volume+string(filepath.Separator)) {
					break
				}
			}
		}
	}

	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, constants.ToolName), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		configDir := filepath.Join(home, ".config", constants.ToolName)
		if config := searchConfigInDirectory(configDir, candidates); config != "" {
			return config
		}
		if config := searchConfigInDirectory(home, candidates); config != "" {
			return config
		}
	}

	if envConfig := os.Getenv(constants.EnvVarPrefix + "_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"yaml": true,
		"csv":  true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format '%s', must be one of: text, json, yaml, csv", c.Output.Format)
	}

	validSortBy := map[string]bool{
		"score":    true,
		"name":     true,
		"issues":   true,
		"severity": true,
	}
	if !validSortBy[c.Output.SortBy] {
		return fmt.Errorf("invalid output.sort_by '%s', must be one of: score, name, issues, severity", c.Output.SortBy)
	}

	if c.Output.MinScore < 0 || c.Output.MinScore > 100 {
		return fmt.Errorf("output.min_score must be within [0,100], got %d", c.Output.MinScore)
	}

	if len(c.Analysis.IncludePatterns) == 0 {
		return fmt.Errorf("analysis.include_patterns cannot be empty")
	}

	if c.Analysis.MaxInputLines < 0 {
		return fmt.Errorf("analysis.max_input_lines must be >= 0, got %d", c.Analysis.MaxInputLines)
	}

	if c.Check.MinScore < 0 || c.Check.MinScore > 100 {
		return fmt.Errorf("check.min_score must be within [0,100], got %d", c.Check.MinScore)
	}

	if c.Check.MaxErrors < -1 {
		return fmt.Errorf("check.max_errors must be >= -1, got %d", c.Check.MaxErrors)
	}

	return nil
}

// RuleDisabled reports whether a rule ID is switched off
func (c *RulesConfig) RuleDisabled(ruleID string) bool {
	for _, id := range c.Disabled {
		if id == ruleID {
			return true
		}
	}
	return false
}

// CategoryDisabled reports whether a whole category is switched off
func (c *RulesConfig) CategoryDisabled(category string) bool {
	for _, name := range c.DisabledCategories {
		if name == category {
			return true
		}
	}
	return false
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("rules", config.Rules)
	v.Set("output", config.Output)
	v.Set("analysis", config.Analysis)
	v.Set("check", config.Check)

	return v.WriteConfig()
}
