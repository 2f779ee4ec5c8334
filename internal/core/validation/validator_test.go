package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendis/resumegen/internal/core/entity"
)

func validResume() entity.Data {
	return entity.Data{
		"personalInfo": map[string]any{
			"name":  "Ada Lovelace",
			"email": "ada@example.com",
		},
		"experience": []any{
			map[string]any{"title": "Engineer", "startDate": "2020-01", "endDate": "Present"},
		},
	}
}

func TestStandard_MissingPersonalInfo(t *testing.T) {
	_, err := Standard(entity.DocumentTypeResume, entity.Data{})
	require.NotNil(t, err)
	assert.Equal(t, entity.CodeMissingPersonalInfo, err.Code)
	assert.Equal(t, "personalInfo", err.Context["field"])
}

func TestStandard_MissingEmail(t *testing.T) {
	data := entity.Data{"personalInfo": map[string]any{"name": "Ada"}}
	_, err := Standard(entity.DocumentTypeResume, data)
	require.NotNil(t, err)
	assert.Equal(t, "personalInfo.email", err.Context["field"])
}

func TestStandard_TitleAlias(t *testing.T) {
	normalized, err := Standard(entity.DocumentTypeResume, validResume())
	require.Nil(t, err)
	exp, _ := normalized["experience"].([]any)
	require.Len(t, exp, 1)
	entry, _ := exp[0].(map[string]any)
	assert.Equal(t, "Engineer", entry["position"])
}

func TestStandard_DoesNotMutateOriginal(t *testing.T) {
	original := validResume()
	_, err := Standard(entity.DocumentTypeResume, original)
	require.Nil(t, err)
	exp, _ := original["experience"].([]any)
	entry, _ := exp[0].(map[string]any)
	_, hasPosition := entry["position"]
	assert.False(t, hasPosition, "original data must not be mutated")
}

func TestStandard_InvalidDateShape(t *testing.T) {
	data := validResume()
	exp, _ := data["experience"].([]any)
	entry, _ := exp[0].(map[string]any)
	entry["startDate"] = "not-a-date"
	_, err := Standard(entity.DocumentTypeResume, data)
	require.NotNil(t, err)
	assert.Equal(t, entity.CodeInvalidDate, err.Code)
}

func TestStandard_CoverLetterRequiresBody(t *testing.T) {
	data := validResume()
	_, err := Standard(entity.DocumentTypeCoverLetter, data)
	require.NotNil(t, err)
	assert.Equal(t, entity.CodeMissingRequiredField, err.Code)
}

func TestStandard_CoverLetterArrayBody(t *testing.T) {
	data := validResume()
	data["body"] = []any{"Paragraph one", "Paragraph two"}
	_, err := Standard(entity.DocumentTypeCoverLetter, data)
	assert.Nil(t, err)
}

func TestUltra_NormalizesEmailAndURL(t *testing.T) {
	data := validResume()
	pi, _ := data["personalInfo"].(map[string]any)
	pi["email"] = "  ADA@Example.COM  "
	pi["website"] = "ada.dev"

	normalized, issues := Ultra(entity.DocumentTypeResume, data, false)
	require.False(t, issues.HasErrors())
	npi, _ := normalized["personalInfo"].(map[string]any)
	assert.Equal(t, "ada@example.com", npi["email"])
	assert.Equal(t, "https://ada.dev", npi["website"])
	require.Len(t, issues.Warnings, 1)
}

func TestUltra_InvalidEmailIsError(t *testing.T) {
	data := validResume()
	pi, _ := data["personalInfo"].(map[string]any)
	pi["email"] = "not-an-email"
	_, issues := Ultra(entity.DocumentTypeResume, data, false)
	require.True(t, issues.HasErrors())
}

func TestUltra_OutputPassesStandard(t *testing.T) {
	// Invariant from spec.md §8: standard validation on ultra's output
	// always succeeds.
	data := validResume()
	pi, _ := data["personalInfo"].(map[string]any)
	pi["website"] = "ada.dev"
	normalized, issues := Ultra(entity.DocumentTypeResume, data, false)
	require.False(t, issues.HasErrors())
	_, stdErr := Standard(entity.DocumentTypeResume, normalized)
	assert.Nil(t, stdErr)
}

func TestIsValidDateShape(t *testing.T) {
	cases := map[string]bool{
		"2020-01":     true,
		"2020-01-15":  true,
		"01-2020":     true,
		"01-15-2020":  true,
		"":            true,
		"present":     true,
		"PRESENT":     true,
		"not-a-date":  false,
		"2020/01/15":  false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsValidDateShape(in), "input=%q", in)
	}
}
