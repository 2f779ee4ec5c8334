package orchestrator

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendis/resumegen/internal/core/cache"
	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/registry"
)

type fakeCompiler struct {
	calls    atomic.Int64
	fail     bool
	response []byte
}

func (f *fakeCompiler) Compile(ctx context.Context, source string) ([]byte, *entity.RenderError) {
	f.calls.Add(1)
	if f.fail {
		return nil, entity.NewError(entity.CodeCompilationFailed, "boom", "boom", nil)
	}
	return f.response, nil
}

func newTestOrchestrator(t *testing.T, compiler *fakeCompiler) *Orchestrator {
	t.Helper()
	c, err := cache.New(nil)
	require.NoError(t, err)
	return New(registry.New(), compiler, c, nil)
}

func sampleResumeRequest() entity.DocumentRequest {
	return entity.DocumentRequest{
		DocumentType: entity.DocumentTypeResume,
		Template:     "classic",
		Format:       entity.FormatPDF,
		Data: entity.Data{
			"personalInfo": map[string]any{"name": "Ada Lovelace", "email": "ada@example.com"},
		},
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	o := newTestOrchestrator(t, &fakeCompiler{})
	req := sampleResumeRequest()
	req.Template = "nonexistent"
	_, err := o.Render(context.Background(), req)
	require.NotNil(t, err)
	assert.Equal(t, entity.CodeTemplateNotFound, err.Code)
}

func TestRender_ValidationFailure(t *testing.T) {
	o := newTestOrchestrator(t, &fakeCompiler{})
	req := sampleResumeRequest()
	req.Data = entity.Data{}
	_, err := o.Render(context.Background(), req)
	require.NotNil(t, err)
	assert.Equal(t, entity.CodeMissingPersonalInfo, err.Code)
}

func TestRender_PDFFormat_Compiles(t *testing.T) {
	compiler := &fakeCompiler{response: []byte("%PDF-1.7")}
	o := newTestOrchestrator(t, compiler)
	req := sampleResumeRequest()

	result, err := o.Render(context.Background(), req)
	require.Nil(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), result.Artifact.Bytes)
	assert.False(t, result.FromCache)
	assert.Equal(t, int64(1), compiler.calls.Load())
}

func TestRender_TypstFormat_DoesNotCompile(t *testing.T) {
	compiler := &fakeCompiler{}
	o := newTestOrchestrator(t, compiler)
	req := sampleResumeRequest()
	req.Format = entity.FormatTypst

	result, err := o.Render(context.Background(), req)
	require.Nil(t, err)
	assert.Contains(t, result.Artifact.TypstSource, "Ada Lovelace")
	assert.Equal(t, int64(0), compiler.calls.Load())
}

func TestRender_DOCXFormat_BypassesTypstPipeline(t *testing.T) {
	compiler := &fakeCompiler{}
	o := newTestOrchestrator(t, compiler)
	req := sampleResumeRequest()
	req.Format = entity.FormatDOCX

	result, err := o.Render(context.Background(), req)
	require.Nil(t, err)
	assert.Equal(t, entity.FormatDOCX, result.Artifact.Format)
	assert.Equal(t, int64(0), compiler.calls.Load())
}

func TestRender_CompilationFailure(t *testing.T) {
	compiler := &fakeCompiler{fail: true}
	o := newTestOrchestrator(t, compiler)
	req := sampleResumeRequest()

	_, err := o.Render(context.Background(), req)
	require.NotNil(t, err)
	assert.Equal(t, entity.CodeCompilationFailed, err.Code)
}
