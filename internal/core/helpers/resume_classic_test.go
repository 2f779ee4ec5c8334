package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendis/resumegen/internal/core/entity"
)

func sampleResumeData() entity.Data {
	return entity.Data{
		"personalInfo": map[string]any{
			"name":     "Ada Lovelace",
			"email":    "ada@example.com",
			"website":  "https://ada.dev",
			"linkedin": "linkedin.com/in/ada",
		},
		"summary": "Mathematician and writer, known for work on Babbage's Analytical Engine.",
		"experience": []any{
			map[string]any{
				"position":   "Collaborator",
				"company":    "Analytical Engine Project",
				"startDate":  "1842-01",
				"endDate":    "1843-01",
				"highlights": []any{"Wrote the first published algorithm intended for machine execution."},
			},
		},
		"education": []any{
			map[string]any{"degree": "Self-taught mathematics", "institution": "Private tutors", "graduationDate": "1835"},
		},
		"skills": []any{"Mathematics", "Analytical engines"},
	}
}

func TestResumeClassic_ValidateData_MissingName(t *testing.T) {
	h := NewResumeClassic(entity.Data{"personalInfo": map[string]any{"email": "a@b.com"}}, Config{})
	err := h.ValidateData()
	require.NotNil(t, err)
	assert.Equal(t, entity.CodeMissingPersonalInfo, err.Code)
}

func TestResumeClassic_Render_ContainsEscapedSections(t *testing.T) {
	h := NewResumeClassic(sampleResumeData(), Config{})
	require.Nil(t, h.ValidateData())
	out := h.Render()

	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "== Experience")
	assert.Contains(t, out, "Collaborator")
	assert.Contains(t, out, "== Skills")
	assert.Contains(t, out, "link(\"https://ada.dev\")")
}

func TestResumeClassic_Render_OmitsEmptySections(t *testing.T) {
	data := entity.Data{"personalInfo": map[string]any{"name": "Ada", "email": "a@b.com"}}
	h := NewResumeClassic(data, Config{})
	out := h.Render()
	assert.NotContains(t, out, "== Experience")
	assert.NotContains(t, out, "== Education")
	assert.NotContains(t, out, "== Skills")
}

func TestResumeClassic_SpacingModeFromConfig(t *testing.T) {
	h := NewResumeClassic(sampleResumeData(), Config{SpacingMode: entity.SpacingNormal})
	out := h.Render()
	assert.Contains(t, out, "margin: 0.80cm")
}

func TestResumeClassic_AnalyzeDocument(t *testing.T) {
	h := NewResumeClassic(sampleResumeData(), Config{})
	analyzer, ok := h.(DocumentAnalyzer)
	require.True(t, ok)
	result := analyzer.AnalyzeDocument()
	assert.Greater(t, result.TotalWords, 0)
	assert.Greater(t, result.EstimatedPages, 0.0)
}
