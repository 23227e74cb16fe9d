package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModuleResolver resolves the module path of the project being scanned, used
// for log output and to sanity-check the working directory.
type ModuleResolver struct{}

// NewModuleResolver creates a module resolver.
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{}
}

// ResolveModuleName returns the custom name when provided, otherwise the
// module path parsed from the nearest go.mod above startDir.
func (r *ModuleResolver) ResolveModuleName(customName, startDir string) (string, error) {
	if customName != "" {
		return customName, nil
	}

	goModPath, err := r.FindGoModFile(startDir)
	if err != nil {
		return "", err
	}
	return r.ParseModuleName(goModPath)
}

// ParseModuleName extracts the module path from a go.mod file.
func (r *ModuleResolver) ParseModuleName(goModPath string) (string, error) {
	content, err := os.ReadFile(goModPath)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod file: %w", err)
	}

	modFile, err := modfile.Parse(goModPath, content, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod file: %w", err)
	}
	if modFile.Module == nil {
		return "", fmt.Errorf("no module declaration found in %s", goModPath)
	}
	return modFile.Module.Mod.Path, nil
}

// FindGoModFile walks up from startDir looking for a go.mod file.
func (r *ModuleResolver) FindGoModFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, statErr := os.Stat(goModPath); statErr == nil {
			return goModPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod found above %s", startDir)
		}
		dir = parent
	}
}
