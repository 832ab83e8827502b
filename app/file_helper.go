package app

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// componentExtensions are the source extensions the analyzer understands
var componentExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
	".mjs": true,
	".cjs": true,
}

// FileHelper provides file collection utilities for analysis runs
type FileHelper struct{}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{}
}

// CollectComponentFiles collects component source files from the given paths.
// Exclude patterns use gitignore syntax, so entries like "node_modules/" and
// "**/*.test.tsx" behave the way a .gitignore would.
func (h *FileHelper) CollectComponentFiles(paths []string, recursive bool, excludePatterns []string) ([]string, error) {
	matcher := ignore.CompileIgnoreLines(excludePatterns...)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			// Files named explicitly bypass the extension check but not excludes
			if !matcher.MatchesPath(path) {
				files = append(files, path)
			}
			continue
		}

		collected, err := h.collectFromDir(path, recursive, matcher)
		if err != nil {
			return nil, err
		}
		files = append(files, collected...)
	}

	return files, nil
}

func (h *FileHelper) collectFromDir(root string, recursive bool, matcher *ignore.GitIgnore) ([]string, error) {
	var files []string

	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(root, entry.Name())
			if h.IsComponentFile(path) && !matcher.MatchesPath(path) {
				files = append(files, path)
			}
		}
		return files, nil
	}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if info.IsDir() {
			if rel != "." && matcher.MatchesPath(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if h.IsComponentFile(path) && !matcher.MatchesPath(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// IsComponentFile checks whether a path has an analyzable extension
func (h *FileHelper) IsComponentFile(path string) bool {
	return componentExtensions[strings.ToLower(filepath.Ext(path))]
}

// FileExists checks if a path exists and is a regular file
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads file content
func (h *FileHelper) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ResolveFilePaths returns explicitly named files as-is and expands
// directories into component files
func ResolveFilePaths(fileHelper *FileHelper, paths []string, recursive bool, excludePatterns []string) ([]string, error) {
	allFiles := true
	for _, path := range paths {
		exists, err := fileHelper.FileExists(path)
		if err != nil || !exists {
			allFiles = false
			break
		}
	}
	if allFiles {
		return paths, nil
	}
	return fileHelper.CollectComponentFiles(paths, recursive, excludePatterns)
}
