package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig should not return nil")
	}

	if config.Output.Format != "text" {
		t.Errorf("Expected Format 'text', got '%s'", config.Output.Format)
	}
	if config.Output.SortBy != "score" {
		t.Errorf("Expected SortBy 'score', got '%s'", config.Output.SortBy)
	}

	if !config.Analysis.Recursive {
		t.Error("Recursive should be true by default")
	}
	if len(config.Analysis.IncludePatterns) == 0 {
		t.Error("IncludePatterns should not be empty")
	}
	if len(config.Analysis.ExcludePatterns) == 0 {
		t.Error("ExcludePatterns should not be empty")
	}
	if config.Analysis.MaxInputLines <= 0 {
		t.Error("MaxInputLines should have a positive default")
	}

	if config.Check.MinScore != DefaultCheckMinScore {
		t.Errorf("Expected Check.MinScore %d, got %d", DefaultCheckMinScore, config.Check.MinScore)
	}
	if config.Check.MaxErrors != DefaultCheckMaxErrors {
		t.Errorf("Expected Check.MaxErrors %d, got %d", DefaultCheckMaxErrors, config.Check.MaxErrors)
	}
}

func TestConfig_Validate_Valid(t *testing.T) {
	config := DefaultConfig()

	if err := config.Validate(); err != nil {
		t.Errorf("Default config should be valid, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidFormat(t *testing.T) {
	config := DefaultConfig()
	config.Output.Format = "xml"

	if err := config.Validate(); err == nil {
		t.Error("Expected error for unsupported output format")
	}
}

func TestConfig_Validate_InvalidSortBy(t *testing.T) {
	config := DefaultConfig()
	config.Output.SortBy = "age"

	if err := config.Validate(); err == nil {
		t.Error("Expected error for unknown sort criteria")
	}
}

func TestConfig_Validate_MinScoreOutOfRange(t *testing.T) {
	config := DefaultConfig()
	config.Output.MinScore = 101

	if err := config.Validate(); err == nil {
		t.Error("Expected error for min_score above 100")
	}
}

func TestConfig_Validate_EmptyIncludePatterns(t *testing.T) {
	config := DefaultConfig()
	config.Analysis.IncludePatterns = nil

	if err := config.Validate(); err == nil {
		t.Error("Expected error for empty include patterns")
	}
}

func TestConfig_Validate_NegativeMaxInputLines(t *testing.T) {
	config := DefaultConfig()
	config.Analysis.MaxInputLines = -1

	if err := config.Validate(); err == nil {
		t.Error("Expected error for negative max_input_lines")
	}
}

func TestConfig_Validate_CheckThresholds(t *testing.T) {
	config := DefaultConfig()
	config.Check.MinScore = 120
	if err := config.Validate(); err == nil {
		t.Error("Expected error for check.min_score above 100")
	}

	config = DefaultConfig()
	config.Check.MaxErrors = -2
	if err := config.Validate(); err == nil {
		t.Error("Expected error for check.max_errors below -1")
	}

	config = DefaultConfig()
	config.Check.MaxErrors = -1
	if err := config.Validate(); err != nil {
		t.Errorf("-1 disables the error gate and should validate, got %v", err)
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig with empty path should fall back to defaults, got %v", err)
	}
	if config.Output.Format != "text" {
		t.Errorf("Expected default format, got '%s'", config.Output.Format)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/cqa.config.json")
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cqa.yaml")
	content := `output:
  format: json
  sort_by: name
check:
  min_score: 60
rules:
  disabled:
    - no-console
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Output.Format != "json" {
		t.Errorf("Expected format json, got '%s'", config.Output.Format)
	}
	if config.Output.SortBy != "name" {
		t.Errorf("Expected sort_by name, got '%s'", config.Output.SortBy)
	}
	if config.Check.MinScore != 60 {
		t.Errorf("Expected check.min_score 60, got %d", config.Check.MinScore)
	}
	if !config.Rules.RuleDisabled("no-console") {
		t.Error("Expected no-console to be disabled")
	}
	// Fields absent from the file keep their defaults
	if !config.Analysis.Recursive {
		t.Error("Unset fields should keep defaults")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cqa.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: xml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected validation error for bad format in file")
	}
}

func TestLoadConfigWithTarget_UpwardDiscovery(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(root, "cqa.yaml")
	if err := os.WriteFile(configPath, []byte("check:\n  min_score: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfigWithTarget("", nested)
	if err != nil {
		t.Fatalf("LoadConfigWithTarget failed: %v", err)
	}
	if config.Check.MinScore != 42 {
		t.Errorf("Expected discovered config min_score 42, got %d", config.Check.MinScore)
	}
}

func TestRulesConfig_Disabled(t *testing.T) {
	rules := RulesConfig{
		Disabled:           []string{"no-var", "todo-comment"},
		DisabledCategories: []string{"accessibility"},
	}

	if !rules.RuleDisabled("no-var") {
		t.Error("no-var should report disabled")
	}
	if rules.RuleDisabled("no-console") {
		t.Error("no-console should not report disabled")
	}
	if !rules.CategoryDisabled("accessibility") {
		t.Error("accessibility should report disabled")
	}
	if rules.CategoryDisabled("naming") {
		t.Error("naming should not report disabled")
	}
}

func TestSaveConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cqa.yaml")

	if err := SaveConfig(DefaultConfig(), path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reloading saved config failed: %v", err)
	}
	if loaded.Output.Format != "text" {
		t.Errorf("round-trip changed format to '%s'", loaded.Output.Format)
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("embedded default config failed to parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default config is invalid: %v", err)
	}
}

func TestGetFullConfigTemplate(t *testing.T) {
	template := GetFullConfigTemplate(ProjectTypeReact, StrictnessStrict)

	if !strings.Contains(template, `"min_score": 75`) {
		t.Error("strict preset should gate at score 75")
	}
	if !strings.Contains(template, "**/*.tsx") {
		t.Error("react preset should include tsx files")
	}
}

func TestGetMinimalConfigTemplate(t *testing.T) {
	template := GetMinimalConfigTemplate()

	if !strings.Contains(template, "include_patterns") {
		t.Error("minimal template should carry include patterns")
	}
}
