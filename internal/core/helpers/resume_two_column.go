package helpers

import (
	"fmt"

	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/validation"
)

// sidebarFill is the fixed sidebar background color required by
// spec.md §4.4.3.
const sidebarFill = "rgb(45, 55, 72)"

// sidebarWidthFraction is the sidebar's share of page width, within the
// 30-35% band spec.md §4.4.3 allows.
const sidebarWidthFraction = 0.32

// ResumeTwoColumnRequiredFields mirrors the classic template's minimum.
var ResumeTwoColumnRequiredFields = []string{"personalInfo.name", "personalInfo.email"}

// ResumeTwoColumn renders a sidebar/main-column layout: contact, skills,
// short education, and certifications in a dark sidebar; summary,
// experience, and projects in the main column.
type ResumeTwoColumn struct {
	data entity.Data
	cfg  Config
}

// NewResumeTwoColumn constructs the two-column résumé helper.
func NewResumeTwoColumn(data entity.Data, cfg Config) Helper {
	return &ResumeTwoColumn{data: data, cfg: cfg}
}

func (h *ResumeTwoColumn) RequiredFields() []string { return ResumeTwoColumnRequiredFields }

func (h *ResumeTwoColumn) TemplateType() entity.DocumentType { return entity.DocumentTypeResume }

func (h *ResumeTwoColumn) ValidateData() *entity.RenderError {
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
	return nil
}

func (h *ResumeTwoColumn) Render() string {
	pi, _ := validation.AsMap(h.data["personalInfo"])
	mode := ResolveSpacingMode(h.cfg, h.data)

	sidebar := joinNonEmpty(
		renderContactLine(pi),
		renderShortEducation(h.data),
		renderSkills(h.data),
		renderCertifications(h.data),
	)

	main := joinNonEmpty(
		renderSummary(h.data),
		renderExperience(h.data),
		renderProjects(h.data),
		renderPublications(h.data),
	)

	layout := fmt.Sprintf(
		"#grid(\n  columns: (%.0f%%, 1fr),\n  gutter: 1.5em,\n  block(fill: %s, inset: 1em, text(fill: white)[\n%s\n  ]),\n  block[\n%s\n  ],\n)\n",
		sidebarWidthFraction*100, sidebarFill, sidebar, main,
	)

	return BuildPreamble(mode) + renderHeader(pi) + layout
}

// renderShortEducation emits a condensed education block for the sidebar:
// degree and institution only, no date range.
func renderShortEducation(data entity.Data) string {
	entries, ok := validation.AsSlice(data["education"])
	if !ok || len(entries) == 0 {
		return ""
	}
	out := sectionHeader("Education")
	for _, raw := range entries {
		entry, ok := validation.AsMap(raw)
		if !ok {
			continue
		}
		degree := validation.FieldWithFallback(entry, "degree", []string{"qualification"}, "")
		institution := validation.FieldWithFallback(entry, "institution", []string{"school", "university"}, "")
		line := validation.Escape(degree)
		if institution != "" {
			line += " — " + validation.Escape(institution)
		}
		out += line + "\n\n"
	}
	return out
}

// AnalyzeDocument implements DocumentAnalyzer for the two-column template.
func (h *ResumeTwoColumn) AnalyzeDocument() AnalysisResult {
	mode := ResolveSpacingMode(h.cfg, h.data)
	sections := map[string]string{
		"summary":        validation.FieldWithFallback(h.data, "summary", []string{"objective", "profile"}, ""),
		"experience":     plainTextOfEntries(h.data, "experience"),
		"education":      plainTextOfEntries(h.data, "education"),
		"projects":       plainTextOfEntries(h.data, "projects"),
		"certifications": plainTextOfEntries(h.data, "certifications"),
	}
	return analyzeSections(sections, mode)
}
