package cli

import (
	"os"
	"path/filepath"

	"github.com/proofroute/proof/internal/templates"
	"github.com/proofroute/proof/internal/utils"
)

// Cleaner removes generated files from scanned directories.
type Cleaner struct {
	diagnostics *utils.DiagnosticSystem
}

// NewCleaner creates a cleaner.
func NewCleaner(diagnostics *utils.DiagnosticSystem) *Cleaner {
	return &Cleaner{diagnostics: diagnostics}
}

// Clean deletes every generated file under the given patterns and returns
// how many were removed.
func (c *Cleaner) Clean(patterns []string) (int, error) {
	dirs, err := utils.ExpandDirectoryPatterns(patterns)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, dir := range dirs {
		path := filepath.Join(dir, templates.GeneratedFileName)
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		if rmErr := os.Remove(path); rmErr != nil {
			return removed, rmErr
		}
		c.diagnostics.Item("removed %s", path)
		removed++
	}
	return removed, nil
}
