package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveModuleNameFromGoMod(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"),
		[]byte("module example.com/shop\n\ngo 1.23\n"), 0o644))
	nested := filepath.Join(root, "internal", "api")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	name, err := NewModuleResolver().ResolveModuleName("", nested)
	require.NoError(t, err)
	assert.Equal(t, "example.com/shop", name)
}

func TestResolveModuleNameCustomWins(t *testing.T) {
	name, err := NewModuleResolver().ResolveModuleName("custom/name", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "custom/name", name)
}

func TestResolveModuleNameNoGoMod(t *testing.T) {
	// Guard against a go.mod in a parent of the temp root.
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	_, err := NewModuleResolver().ResolveModuleName("", dir)
	if err == nil {
		t.Skip("a go.mod exists above the temp directory")
	}
	assert.Contains(t, err.Error(), "no go.mod")
}

func TestParseModuleNameMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.mod")
	require.NoError(t, os.WriteFile(path, []byte("modul example.com/shop\n"), 0o644))

	_, err := NewModuleResolver().ParseModuleName(path)
	assert.Error(t, err)
}
