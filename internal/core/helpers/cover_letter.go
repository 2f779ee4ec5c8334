package helpers

import (
	"fmt"
	"time"

	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/validation"
)

// CoverLetterRequiredFields lists the minimum a cover letter needs.
var CoverLetterRequiredFields = []string{"personalInfo.name", "personalInfo.email", "body"}

// CoverLetter renders a salutation, date, and an ordered sequence of body
// paragraphs (spec.md §4.4.5).
type CoverLetter struct {
	data entity.Data
	cfg  Config
	now  func() time.Time
}

// NewCoverLetter constructs the cover-letter helper.
func NewCoverLetter(data entity.Data, cfg Config) Helper {
	return &CoverLetter{data: data, cfg: cfg, now: time.Now}
}

func (h *CoverLetter) RequiredFields() []string { return CoverLetterRequiredFields }

func (h *CoverLetter) TemplateType() entity.DocumentType { return entity.DocumentTypeCoverLetter }

func (h *CoverLetter) ValidateData() *entity.RenderError {
	pi, ok := validation.AsMap(h.data["personalInfo"])
	if !ok {
		return entity.NewFieldError(entity.CodeMissingPersonalInfo, "personalInfo", "personalInfo is required")
	}
	if name, _ := pi["name"].(string); name == "" {
		return entity.NewFieldError(entity.CodeMissingPersonalInfo, "personalInfo.name", "personalInfo.name is required")
	}
	if email, _ := pi["email"].(string); email == "" {
		return entity.NewFieldError(entity.CodeMissingPersonalInfo, "personalInfo.email", "personalInfo.email is required")
	}
	if _, exists := h.data["body"]; !exists {
		return entity.NewFieldError(entity.CodeMissingRequiredField, "body", "body is required for cover letters")
	}
	return nil
}

func (h *CoverLetter) Render() string {
	pi, _ := validation.AsMap(h.data["personalInfo"])
	mode := ResolveSpacingMode(h.cfg, h.data)

	body := joinNonEmpty(
		renderContactLine(pi),
		h.renderDate(),
		h.renderSalutation(),
		h.renderBody(),
		h.renderClosing(pi),
	)

	return BuildPreamble(mode) + renderHeader(pi) + body
}

// renderDate emits data.date if present, else the current local date
// formatted "Month D, YYYY".
func (h *CoverLetter) renderDate() string {
	if date, ok := h.data["date"].(string); ok && date != "" {
		return validation.Escape(date)
	}
	return h.now().Format("January 2, 2006")
}

// renderSalutation derives the greeting deterministically per
// spec.md §4.4.5's fallback chain.
func (h *CoverLetter) renderSalutation() string {
	recipient, _ := validation.AsMap(h.data["recipient"])

	if name, _ := recipient["name"].(string); name != "" {
		return fmt.Sprintf("Dear %s,", validation.Escape(name))
	}
	if title, _ := recipient["title"].(string); title != "" {
		return fmt.Sprintf("Dear %s,", validation.Escape(title))
	}
	if company, _ := recipient["company"].(string); company != "" {
		return fmt.Sprintf("Dear Hiring Manager at %s,", validation.Escape(company))
	}
	return "Dear Hiring Manager,"
}

// renderBody accepts either a single string or an ordered sequence of
// paragraphs; empty entries are skipped.
func (h *CoverLetter) renderBody() string {
	switch body := h.data["body"].(type) {
	case string:
		return validation.Escape(body)
	case []any:
		var paragraphs []string
		for _, p := range body {
			s, ok := p.(string)
			if !ok || s == "" {
				continue
			}
			paragraphs = append(paragraphs, validation.Escape(s))
		}
		return joinNonEmpty(paragraphs...)
	default:
		return ""
	}
}

func (h *CoverLetter) renderClosing(pi map[string]any) string {
	closing := validation.FieldWithFallback(h.data, "closing", nil, "Sincerely,")
	name := validation.FieldWithFallback(pi, "name", nil, "")
	return validation.Escape(closing) + "\n\n" + validation.Escape(name)
}

// AnalyzeDocument implements DocumentAnalyzer for cover letters.
func (h *CoverLetter) AnalyzeDocument() AnalysisResult {
	mode := ResolveSpacingMode(h.cfg, h.data)
	return analyzeSections(map[string]string{"body": h.renderBody()}, mode)
}
