// Package generator turns scanned package metadata into formatted generated
// source files. It never emits partial output: any upstream resolution
// failure aborts the package before this layer runs.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/proofroute/proof/internal/models"
	"github.com/proofroute/proof/internal/templates"
)

// Generator renders and writes generated files.
type Generator struct{}

// NewGenerator creates a code generator instance.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateModule produces the generated file for one package, or nil when
// the package carries no annotations.
func (g *Generator) GenerateModule(metadata *models.PackageMetadata) (*models.GeneratedFile, error) {
	if metadata == nil {
		return nil, fmt.Errorf("metadata cannot be nil")
	}
	if !metadata.HasAnnotations() {
		return nil, nil
	}

	source, err := templates.GenerateFile(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to render generated file for package %s: %w", metadata.PackageName, err)
	}

	filePath := filepath.Join(metadata.PackagePath, templates.GeneratedFileName)

	// goimports formatting keeps the output byte-stable across runs and
	// prunes imports the rendered constructs did not end up using.
	formatted, err := imports.Process(filePath, []byte(source), nil)
	if err != nil {
		return nil, fmt.Errorf("generated code for package %s does not format: %w", metadata.PackageName, err)
	}

	return &models.GeneratedFile{FilePath: filePath, Content: formatted}, nil
}

// WriteFile writes a generated file to disk.
func (g *Generator) WriteFile(file *models.GeneratedFile) error {
	if file == nil {
		return nil
	}
	if err := os.WriteFile(file.FilePath, file.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", file.FilePath, err)
	}
	return nil
}
