package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofroute/proof/internal/models"
	"github.com/proofroute/proof/internal/parser"
)

const annotatedSource = `package api

//proof::error
type UserError int

const (
	//proof::status NotFound
	ErrUserNotFound UserError = iota
	//proof::status BadRequest
	ErrInvalidName
)

func (e UserError) Error() string { return "user error" }

//proof::route GET /users/{id:int}
//proof::or id=ErrUserNotFound
func GetUser(ctx context.Context, id int) (*proof.Response, UserError) {
	return nil, 0
}
`

func scanSource(t *testing.T, source string) *models.PackageMetadata {
	t.Helper()
	metadata, err := parser.NewParser().ParseSource("api.go", source)
	require.NoError(t, err)
	return metadata
}

func TestGenerateModule(t *testing.T) {
	metadata := scanSource(t, annotatedSource)
	metadata.PackagePath = t.TempDir()

	file, err := NewGenerator().GenerateModule(metadata)
	require.NoError(t, err)
	require.NotNil(t, file)

	assert.Equal(t, filepath.Join(metadata.PackagePath, "autogen_proof.go"), file.FilePath)

	content := string(file.Content)
	assert.Contains(t, content, "// Code generated by proof; DO NOT EDIT.")
	assert.Contains(t, content, "package api")
	assert.Contains(t, content, "func (e UserError) ToResponse() *proof.Response")
	assert.Contains(t, content, "case ErrUserNotFound:")
	assert.Contains(t, content, "func proofRouteGetUser(c proof.Context)")
	assert.Contains(t, content, "c.Write(ErrUserNotFound.ToResponse())")
	assert.Contains(t, content, `r.Handle("GET", "/users/{id:int}", proofRouteGetUser)`)
}

func TestGenerateModuleIsDeterministic(t *testing.T) {
	dir := t.TempDir()

	first := scanSource(t, annotatedSource)
	first.PackagePath = dir
	second := scanSource(t, annotatedSource)
	second.PackagePath = dir

	gen := NewGenerator()
	fileA, err := gen.GenerateModule(first)
	require.NoError(t, err)
	fileB, err := gen.GenerateModule(second)
	require.NoError(t, err)

	assert.Equal(t, fileA.Content, fileB.Content)
}

func TestGenerateModuleWithoutAnnotations(t *testing.T) {
	metadata := scanSource(t, "package api\n\nfunc helper() {}\n")

	file, err := NewGenerator().GenerateModule(metadata)
	require.NoError(t, err)
	assert.Nil(t, file)
}

func TestGenerateModuleNilMetadata(t *testing.T) {
	_, err := NewGenerator().GenerateModule(nil)
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	file := &models.GeneratedFile{
		FilePath: filepath.Join(dir, "autogen_proof.go"),
		Content:  []byte("package api\n"),
	}

	require.NoError(t, NewGenerator().WriteFile(file))

	written, err := os.ReadFile(file.FilePath)
	require.NoError(t, err)
	assert.Equal(t, file.Content, written)
}
