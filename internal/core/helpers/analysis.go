package helpers

import (
	"math"
	"strings"

	"github.com/rendis/resumegen/internal/core/entity"
)

// SectionMetric holds the per-section counts of spec.md §4.4.4.
type SectionMetric struct {
	Words         int `json:"words"`
	Characters    int `json:"characters"`
	EstimatedLines int `json:"estimated_lines"`
}

// AnalysisResult is the object returned by a helper's AnalyzeDocument.
type AnalysisResult struct {
	Sections        map[string]SectionMetric `json:"sections"`
	TotalWords      int                       `json:"total_words"`
	TotalCharacters int                       `json:"total_characters"`
	EstimatedPages  float64                   `json:"estimated_pages"`
	Recommendations []string                  `json:"recommendations"`
}

// analyzeSections computes per-section and aggregate metrics from the raw
// text fed to each section emitter (pre-Typst-markup plain text), then
// derives page estimates and recommendations.
func analyzeSections(sections map[string]string, mode entity.SpacingMode) AnalysisResult {
	metrics := make(map[string]SectionMetric, len(sections))
	totalWords, totalChars, totalLines := 0, 0, 0

	for name, text := range sections {
		if strings.TrimSpace(text) == "" {
			continue
		}
		words := len(strings.Fields(text))
		chars := len(text)
		lines := int(math.Ceil(float64(chars)/75)) + 2
		metrics[name] = SectionMetric{Words: words, Characters: chars, EstimatedLines: lines}
		totalWords += words
		totalChars += chars
		totalLines += lines
	}

	lpp, ok := linesPerPage[mode]
	if !ok {
		lpp = linesPerPage[entity.SpacingCompact]
	}
	estimatedPages := float64(totalLines) / float64(lpp)

	threshold := 2.0
	if mode == entity.SpacingNormal {
		threshold = 1.5
	}

	var recommendations []string
	if estimatedPages > threshold {
		recommendations = append(recommendations, "Document is estimated to exceed the recommended page count; consider a more compact spacing mode or trimming content.")
	}
	if totalWords > 800 {
		recommendations = append(recommendations, "Document exceeds 800 words; consider trimming less relevant content.")
	}

	return AnalysisResult{
		Sections:        metrics,
		TotalWords:      totalWords,
		TotalCharacters: totalChars,
		EstimatedPages:  estimatedPages,
		Recommendations: recommendations,
	}
}
