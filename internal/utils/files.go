package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandDirectoryPatterns resolves CLI directory arguments into the sorted
// list of package directories to scan. A trailing "/..." scans recursively,
// Go-tool style; anything else names a single directory.
func ExpandDirectoryPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string

	add := func(dir string) {
		clean := filepath.Clean(dir)
		if !seen[clean] {
			seen[clean] = true
			dirs = append(dirs, clean)
		}
	}

	for _, pattern := range patterns {
		if strings.HasSuffix(pattern, "/...") {
			root := filepath.Clean(strings.TrimSuffix(pattern, "/..."))
			walked, err := walkGoDirs(root)
			if err != nil {
				return nil, err
			}
			for _, dir := range walked {
				add(dir)
			}
			continue
		}

		info, err := os.Stat(pattern)
		if err != nil {
			return nil, fmt.Errorf("directory %s: %w", pattern, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", pattern)
		}
		add(pattern)
	}

	sort.Strings(dirs)
	return dirs, nil
}

// walkGoDirs returns every directory under root that contains Go files,
// skipping vendor, testdata, hidden and underscore-prefixed directories.
func walkGoDirs(root string) ([]string, error) {
	var dirs []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "vendor" || name == "testdata" ||
				strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".go") && !strings.HasSuffix(d.Name(), "_test.go") {
			dirs = append(dirs, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	seen := make(map[string]bool)
	var unique []string
	for _, dir := range dirs {
		if !seen[dir] {
			seen[dir] = true
			unique = append(unique, dir)
		}
	}
	return unique, nil
}
