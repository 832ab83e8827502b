package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IjaIjb/code-quality-analyzer/internal/config"
)

func TestInitCommand_BasicConfigCreation(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "cqa.config.json")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	contentStr := string(content)
	expectedSections := []string{
		"rules",
		"check",
		"output",
		"analysis",
		"min_score",
		"max_errors",
	}
	for _, section := range expectedSections {
		if !strings.Contains(contentStr, section) {
			t.Errorf("Config file missing expected section: %s", section)
		}
	}
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "cqa.config.json")

	existingContent := []byte(`{"existing": true}`)
	if err := os.WriteFile(configPath, existingContent, 0644); err != nil {
		t.Fatalf("Failed to create existing file: %v", err)
	}

	// Without force - should fail
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when file exists without --force")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected 'already exists' error, got: %v", err)
	}

	// With force - should succeed
	cmd = initCmd()
	cmd.SetArgs([]string{"--config", configPath, "--force"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	if !strings.Contains(string(content), "rules") {
		t.Error("Config file was not overwritten with new content")
	}
}

func TestInitCommand_MinimalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "cqa.config.json")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", configPath, "--minimal"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init --minimal failed: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "check") {
		t.Error("Minimal config missing check section")
	}
	if !strings.Contains(contentStr, "analysis") {
		t.Error("Minimal config missing analysis section")
	}
	if !strings.Contains(contentStr, "minimal") {
		t.Error("Minimal config should indicate it's minimal")
	}
}

func TestInitCommand_CustomOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	customPath := filepath.Join(tmpDir, "custom-config.json")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", customPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init with custom path failed: %v", err)
	}

	if _, err := os.Stat(customPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created at custom path")
	}
}

func TestInitCommand_InvalidDirectory(t *testing.T) {
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", "/nonexistent/directory/cqa.config.json"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error when directory doesn't exist")
	}
	if !strings.Contains(err.Error(), "directory does not exist") {
		t.Errorf("Expected 'directory does not exist' error, got: %v", err)
	}
}

func TestInitCommand_FullConfigSize(t *testing.T) {
	tmpDir := t.TempDir()

	fullPath := filepath.Join(tmpDir, "full.json")
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", fullPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	fullContent, _ := os.ReadFile(fullPath)

	minimalPath := filepath.Join(tmpDir, "minimal.json")
	cmd = initCmd()
	cmd.SetArgs([]string{"--config", minimalPath, "--minimal"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init --minimal failed: %v", err)
	}
	minimalContent, _ := os.ReadFile(minimalPath)

	if len(fullContent) <= len(minimalContent) {
		t.Error("Full config should be larger than minimal config")
	}
}

func TestGetFullConfigTemplate(t *testing.T) {
	tests := []struct {
		projectType   config.ProjectType
		strictness    config.Strictness
		wantMinScore  string
		wantMaxErrors string
	}{
		{
			projectType:   config.ProjectTypeGeneric,
			strictness:    config.StrictnessStandard,
			wantMinScore:  `"min_score": 50`,
			wantMaxErrors: `"max_errors": 0`,
		},
		{
			projectType:   config.ProjectTypeReact,
			strictness:    config.StrictnessStrict,
			wantMinScore:  `"min_score": 75`,
			wantMaxErrors: `"max_errors": 0`,
		},
		{
			projectType:   config.ProjectTypeLibrary,
			strictness:    config.StrictnessRelaxed,
			wantMinScore:  `"min_score": 0`,
			wantMaxErrors: `"max_errors": 5`,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.projectType)+"_"+string(tt.strictness), func(t *testing.T) {
			template := config.GetFullConfigTemplate(tt.projectType, tt.strictness)

			if !strings.Contains(template, tt.wantMinScore) {
				t.Errorf("Template missing expected gate: %s", tt.wantMinScore)
			}
			if !strings.Contains(template, tt.wantMaxErrors) {
				t.Errorf("Template missing expected gate: %s", tt.wantMaxErrors)
			}
		})
	}
}

func TestGetMinimalConfigTemplate(t *testing.T) {
	template := config.GetMinimalConfigTemplate()

	requiredSections := []string{
		"check",
		"analysis",
		"min_score",
		"max_errors",
		"include_patterns",
		"exclude_patterns",
	}
	for _, section := range requiredSections {
		if !strings.Contains(template, section) {
			t.Errorf("Minimal template missing required section: %s", section)
		}
	}

	fullTemplate := config.GetFullConfigTemplate(config.ProjectTypeGeneric, config.StrictnessStandard)
	if len(template) >= len(fullTemplate) {
		t.Error("Minimal template should be smaller than full template")
	}
}

func TestProjectPresets(t *testing.T) {
	presets := config.GetProjectPresets()

	projectTypes := []config.ProjectType{
		config.ProjectTypeGeneric,
		config.ProjectTypeReact,
		config.ProjectTypeNext,
		config.ProjectTypeLibrary,
	}

	for _, pt := range projectTypes {
		preset, ok := presets[pt]
		if !ok {
			t.Errorf("Missing preset for project type: %s", pt)
			continue
		}
		if len(preset.IncludePatterns) == 0 {
			t.Errorf("Project type %s has no include patterns", pt)
		}
		if len(preset.ExcludePatterns) == 0 {
			t.Errorf("Project type %s has no exclude patterns", pt)
		}

		hasNodeModules := false
		for _, pattern := range preset.ExcludePatterns {
			if strings.Contains(pattern, "node_modules") {
				hasNodeModules = true
				break
			}
		}
		if !hasNodeModules {
			t.Errorf("Project type %s should exclude node_modules", pt)
		}
	}
}

func TestStrictnessPresets(t *testing.T) {
	presets := config.GetStrictnessPresets()

	for _, s := range []config.Strictness{
		config.StrictnessRelaxed,
		config.StrictnessStandard,
		config.StrictnessStrict,
	} {
		if _, ok := presets[s]; !ok {
			t.Errorf("Missing preset for strictness: %s", s)
		}
	}

	relaxed := presets[config.StrictnessRelaxed]
	standard := presets[config.StrictnessStandard]
	strict := presets[config.StrictnessStrict]

	// Gates tighten monotonically
	if relaxed.MinScore > standard.MinScore || standard.MinScore > strict.MinScore {
		t.Errorf("score gates should tighten: relaxed %d, standard %d, strict %d",
			relaxed.MinScore, standard.MinScore, strict.MinScore)
	}
	if relaxed.MaxErrors < standard.MaxErrors {
		t.Errorf("relaxed should allow at least as many errors as standard: %d vs %d",
			relaxed.MaxErrors, standard.MaxErrors)
	}
}

func TestConfigTemplateHasComments(t *testing.T) {
	template := config.GetFullConfigTemplate(config.ProjectTypeGeneric, config.StrictnessStandard)

	if !strings.Contains(template, "//") {
		t.Error("Full template should contain JSONC comments")
	}

	expectedComments := []string{
		"RULE CATALOG",
		"CI GATE",
		"OUTPUT SETTINGS",
		"ANALYSIS SCOPE",
		"github.com/IjaIjb/code-quality-analyzer",
	}
	for _, comment := range expectedComments {
		if !strings.Contains(template, comment) {
			t.Errorf("Template missing expected comment/section: %s", comment)
		}
	}
}

func TestNextProjectPresetHasNextExclusion(t *testing.T) {
	presets := config.GetProjectPresets()
	nextPreset := presets[config.ProjectTypeNext]

	hasNextDir := false
	for _, pattern := range nextPreset.ExcludePatterns {
		if strings.Contains(pattern, ".next") {
			hasNextDir = true
			break
		}
	}
	if !hasNextDir {
		t.Error("Next preset should exclude .next directory")
	}
}

func TestLibraryPresetScopesToSrc(t *testing.T) {
	presets := config.GetProjectPresets()
	libraryPreset := presets[config.ProjectTypeLibrary]

	for _, pattern := range libraryPreset.IncludePatterns {
		if !strings.HasPrefix(pattern, "src/") {
			t.Errorf("library include pattern %q should be scoped to src/", pattern)
		}
	}
}

func TestInitCmd_FlagsExist(t *testing.T) {
	cmd := initCmd()

	expectedFlags := []string{"config", "force", "minimal", "interactive"}
	for _, flagName := range expectedFlags {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}

	shortFlags := map[string]string{
		"c": "config",
		"f": "force",
		"i": "interactive",
	}
	for short, long := range shortFlags {
		if cmd.Flags().ShorthandLookup(short) == nil {
			t.Errorf("Missing short flag -%s for --%s", short, long)
		}
	}
}

func TestInitCmd_DefaultConfigPath(t *testing.T) {
	cmd := initCmd()

	configFlag := cmd.Flags().Lookup("config")
	if configFlag == nil {
		t.Fatal("config flag not found")
	}
	if configFlag.DefValue != "cqa.config.json" {
		t.Errorf("Expected default config path to be 'cqa.config.json', got '%s'", configFlag.DefValue)
	}
}
