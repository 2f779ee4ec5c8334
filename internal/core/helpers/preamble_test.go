package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rendis/resumegen/internal/core/entity"
)

func TestResolveSpacingMode_Order(t *testing.T) {
	data := entity.Data{"spacing_mode": "normal", "spacingMode": "ultra-compact"}
	assert.Equal(t, entity.SpacingMode("normal"), ResolveSpacingMode(Config{}, data))
	assert.Equal(t, entity.SpacingNormal, ResolveSpacingMode(Config{SpacingMode: entity.SpacingNormal}, entity.Data{"spacing_mode": "compact"}))
}

func TestResolveSpacingMode_DataSpacingModeCamelCaseFallback(t *testing.T) {
	data := entity.Data{"spacingMode": "ultra-compact"}
	assert.Equal(t, entity.SpacingMode("ultra-compact"), ResolveSpacingMode(Config{}, data))
}

func TestResolveSpacingMode_DefaultsToCompact(t *testing.T) {
	assert.Equal(t, entity.SpacingCompact, ResolveSpacingMode(Config{}, entity.Data{}))
}

func TestBuildPreamble_KnownModes(t *testing.T) {
	assert.Contains(t, BuildPreamble(entity.SpacingNormal), "size: 10.0pt")
	assert.Contains(t, BuildPreamble(entity.SpacingUltraCompact), "size: 9.5pt")
}

func TestBuildPreamble_UnknownModeFallsBackToCompact(t *testing.T) {
	assert.Equal(t, BuildPreamble(entity.SpacingCompact), BuildPreamble(entity.SpacingMode("bogus")))
}

func TestBuildPreamble_EmitsFontFallbackChain(t *testing.T) {
	assert.Contains(t, BuildPreamble(entity.SpacingCompact), `font: ("Arial", "Liberation Sans", "DejaVu Sans")`)
}

func TestFontWithFallbacks_UnknownFamilyIsQuotedAlone(t *testing.T) {
	assert.Equal(t, `"Comic Sans"`, fontWithFallbacks("Comic Sans"))
}

func TestAnalyzeSections_RecommendsOnLongDocument(t *testing.T) {
	longText := ""
	for i := 0; i < 1000; i++ {
		longText += "word "
	}
	result := analyzeSections(map[string]string{"summary": longText}, entity.SpacingNormal)
	assert.NotEmpty(t, result.Recommendations)
}

func TestAnalyzeSections_SkipsEmptySections(t *testing.T) {
	result := analyzeSections(map[string]string{"summary": "", "experience": "hello world"}, entity.SpacingCompact)
	_, hasSummary := result.Sections["summary"]
	assert.False(t, hasSummary)
	assert.Contains(t, result.Sections, "experience")
}
