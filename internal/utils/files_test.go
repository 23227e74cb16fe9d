package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestExpandDirectoryPatternsRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "api", "users.go"), "package api\n")
	writeFile(t, filepath.Join(root, "api", "orders", "orders.go"), "package orders\n")
	writeFile(t, filepath.Join(root, "vendor", "dep", "dep.go"), "package dep\n")
	writeFile(t, filepath.Join(root, "api", "only_test.go"), "package api\n")
	writeFile(t, filepath.Join(root, "docs", "readme.md"), "hi\n")

	dirs, err := ExpandDirectoryPatterns([]string{root + "/..."})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "api"),
		filepath.Join(root, "api", "orders"),
	}, dirs)
}

func TestExpandDirectoryPatternsSingleDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "api", "users.go"), "package api\n")

	dirs, err := ExpandDirectoryPatterns([]string{filepath.Join(root, "api")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "api")}, dirs)
}

func TestExpandDirectoryPatternsMissingDir(t *testing.T) {
	_, err := ExpandDirectoryPatterns([]string{filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

func TestExpandDirectoryPatternsDeduplicates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "api", "users.go"), "package api\n")

	dir := filepath.Join(root, "api")
	dirs, err := ExpandDirectoryPatterns([]string{dir, dir, root + "/..."})
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, dirs)
}
