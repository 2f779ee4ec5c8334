package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendis/resumegen/internal/core/entity"
)

func baseCoverLetterData() entity.Data {
	return entity.Data{
		"personalInfo": map[string]any{"name": "Ada Lovelace", "email": "ada@example.com"},
		"body":         "I am writing to apply for the position.",
	}
}

func TestCoverLetter_Salutation_RecipientName(t *testing.T) {
	data := baseCoverLetterData()
	data["recipient"] = map[string]any{"name": "Charles Babbage"}
	h := NewCoverLetter(data, Config{}).(*CoverLetter)
	assert.Equal(t, "Dear Charles Babbage,", h.renderSalutation())
}

func TestCoverLetter_Salutation_RecipientTitle(t *testing.T) {
	data := baseCoverLetterData()
	data["recipient"] = map[string]any{"title": "Hiring Committee"}
	h := NewCoverLetter(data, Config{}).(*CoverLetter)
	assert.Equal(t, "Dear Hiring Committee,", h.renderSalutation())
}

func TestCoverLetter_Salutation_RecipientCompany(t *testing.T) {
	data := baseCoverLetterData()
	data["recipient"] = map[string]any{"company": "Analytical Engines Inc."}
	h := NewCoverLetter(data, Config{}).(*CoverLetter)
	assert.Equal(t, "Dear Hiring Manager at Analytical Engines Inc.,", h.renderSalutation())
}

func TestCoverLetter_Salutation_Default(t *testing.T) {
	h := NewCoverLetter(baseCoverLetterData(), Config{}).(*CoverLetter)
	assert.Equal(t, "Dear Hiring Manager,", h.renderSalutation())
}

func TestCoverLetter_Date_DefaultsToToday(t *testing.T) {
	h := NewCoverLetter(baseCoverLetterData(), Config{}).(*CoverLetter)
	h.now = func() time.Time { return time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC) }
	assert.Equal(t, "July 30, 2026", h.renderDate())
}

func TestCoverLetter_Date_UsesSuppliedValue(t *testing.T) {
	data := baseCoverLetterData()
	data["date"] = "March 1, 2026"
	h := NewCoverLetter(data, Config{}).(*CoverLetter)
	assert.Equal(t, "March 1, 2026", h.renderDate())
}

func TestCoverLetter_Body_ArrayParagraphsSkipEmpty(t *testing.T) {
	data := baseCoverLetterData()
	data["body"] = []any{"First paragraph.", "", "Second paragraph."}
	h := NewCoverLetter(data, Config{}).(*CoverLetter)
	body := h.renderBody()
	assert.Contains(t, body, "First paragraph.")
	assert.Contains(t, body, "Second paragraph.")
}

func TestCoverLetter_ValidateData_RequiresBody(t *testing.T) {
	data := entity.Data{"personalInfo": map[string]any{"name": "Ada", "email": "a@b.com"}}
	h := NewCoverLetter(data, Config{})
	err := h.ValidateData()
	require.NotNil(t, err)
	assert.Equal(t, entity.CodeMissingRequiredField, err.Code)
}

func TestCoverLetter_Render_IncludesSalutationAndBody(t *testing.T) {
	h := NewCoverLetter(baseCoverLetterData(), Config{})
	out := h.Render()
	assert.Contains(t, out, "Dear Hiring Manager,")
	assert.Contains(t, out, "I am writing to apply for the position.")
	assert.Contains(t, out, "Sincerely,")
}
