package typst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_WithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	assert.Equal(t, "typst", opts.BinPath)
	assert.NotZero(t, opts.Timeout)
}

func TestBuildArgs_IncludesFontDirsAndFormat(t *testing.T) {
	c := &Compiler{opts: Options{FontDirs: []string{"/fonts/a", "/fonts/b"}}}
	args := c.buildArgs("pdf")
	assert.Equal(t, []string{"compile", "--format", "pdf", "--font-path", "/fonts/a", "--font-path", "/fonts/b", "-", "-"}, args)
}

func TestNewCompilationError_CarriesDiagnostics(t *testing.T) {
	err := NewCompilationError("3:1 error: unexpected token", assert.AnError)
	assert.Equal(t, "TPL002", err.Code)
	assert.Equal(t, "3:1 error: unexpected token", err.Context["diagnostics"])
}
