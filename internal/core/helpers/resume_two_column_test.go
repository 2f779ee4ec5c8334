package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendis/resumegen/internal/core/entity"
)

func TestResumeTwoColumn_Render_HasSidebarGrid(t *testing.T) {
	h := NewResumeTwoColumn(sampleResumeData(), Config{})
	require.Nil(t, h.ValidateData())
	out := h.Render()

	assert.Contains(t, out, "#grid(")
	assert.Contains(t, out, sidebarFill)
	assert.Contains(t, out, "Ada Lovelace")
}

func TestResumeTwoColumn_ShortEducationOmitsDateRange(t *testing.T) {
	out := renderShortEducation(sampleResumeData())
	assert.Contains(t, out, "Self-taught mathematics")
	assert.NotContains(t, out, "1835")
}

func TestResumeTwoColumn_ValidateData_MissingEmail(t *testing.T) {
	h := NewResumeTwoColumn(entity.Data{"personalInfo": map[string]any{"name": "Ada"}}, Config{})
	err := h.ValidateData()
	require.NotNil(t, err)
	assert.Equal(t, "personalInfo.email", err.Context["field"])
}
