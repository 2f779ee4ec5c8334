package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendis/resumegen/internal/core/entity"
)

func TestCommands_Wiring(t *testing.T) {
	assert.Equal(t, "generate", generateCommand().Name)
	assert.Equal(t, "list", listCommand().Name)
	assert.Equal(t, "info", infoCommand().Name)
	assert.Equal(t, "sample", sampleCommand().Name)

	assert.NotEmpty(t, generateCommand().Usage)
	assert.NotEmpty(t, generateCommand().ArgsUsage)
}

func TestExitCodeForError_Validation(t *testing.T) {
	err := entity.NewFieldError(entity.CodeMissingPersonalInfo, "personalInfo", "personalInfo is required")
	assert.Equal(t, exitValidationError, exitCodeForError(err))
}

func TestExitCodeForError_TemplateNotFound(t *testing.T) {
	err := entity.NewTemplateNotFoundError(entity.DocumentTypeResume, "nonexistent", []string{"classic"})
	assert.Equal(t, exitTemplateNotFound, exitCodeForError(err))
}

func TestExitCodeForError_CompilationFailure(t *testing.T) {
	err := entity.NewError(entity.CodeCompilationFailed, "boom", "boom", nil)
	assert.Equal(t, exitCompilationError, exitCodeForError(err))
}

func TestExitCodeForError_Other(t *testing.T) {
	err := entity.NewError(entity.CodeUnexpected, "boom", "boom", nil)
	assert.Equal(t, exitOther, exitCodeForError(err))
}

func TestReadInputFile_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"personalInfo":{"name":"Ada"}}`), 0o644))

	data, err := readInputFile(path)
	require.NoError(t, err)
	pi, ok := data["personalInfo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", pi["name"])
}

func TestReadInputFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(path, []byte("personalInfo:\n  name: Ada\n"), 0o644))

	data, err := readInputFile(path)
	require.NoError(t, err)
	pi, ok := data["personalInfo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", pi["name"])
}

func TestReadInputFile_MissingFile(t *testing.T) {
	_, err := readInputFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
