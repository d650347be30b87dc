package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/imamik/stackgen/internal/config"
	"github.com/imamik/stackgen/internal/generate"
)

// Factory function variables for generate - can be replaced in tests.
var (
	// loadSpec loads the project configuration from file.
	loadSpec = config.Load

	// generateFiles renders the full configuration file set.
	generateFiles = generate.Generate

	// writeFile writes data to a file.
	writeFile = os.WriteFile

	// mkdirAll creates a directory tree.
	mkdirAll = os.MkdirAll
)

// Generate loads the configuration, renders all configuration files and
// writes them into outputDir, preserving repository-relative paths.
func Generate(configPath, outputDir string) error {
	spec, err := loadSpec(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	files, err := generateFiles(spec)
	if err != nil {
		return fmt.Errorf("failed to generate files: %w", err)
	}

	for _, path := range files.Paths() {
		target := filepath.Join(outputDir, filepath.FromSlash(path))
		if err := mkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
		if err := writeFile(target, []byte(files[path]), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	printGenerateSuccess(outputDir, files)
	return nil
}

// printGenerateSuccess lists the written files.
func printGenerateSuccess(outputDir string, files generate.FileMap) {
	fmt.Println()
	fmt.Printf("Generated %d files in %s:\n", len(files), outputDir)
	fmt.Println()
	for _, path := range files.Paths() {
		fmt.Printf("  %s\n", path)
	}
	fmt.Println()
}
