package helpers

import (
	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/validation"
)

// ResumeClassicRequiredFields lists the paths a classic resume cannot
// render without. The broader structural checks already ran in the
// validator; this is the helper's own idempotent restatement per
// spec.md §4.4.
var ResumeClassicRequiredFields = []string{"personalInfo.name", "personalInfo.email"}

// ResumeClassic is a single-column résumé template: header, summary,
// experience, education, skills, certifications, projects, publications.
type ResumeClassic struct {
	data entity.Data
	cfg  Config
}

// NewResumeClassic constructs the classic résumé helper.
func NewResumeClassic(data entity.Data, cfg Config) Helper {
	return &ResumeClassic{data: data, cfg: cfg}
}

func (h *ResumeClassic) RequiredFields() []string { return ResumeClassicRequiredFields }

func (h *ResumeClassic) TemplateType() entity.DocumentType { return entity.DocumentTypeResume }

func (h *ResumeClassic) ValidateData() *entity.RenderError {
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

func (h *ResumeClassic) Render() string {
	pi, _ := validation.AsMap(h.data["personalInfo"])
	mode := ResolveSpacingMode(h.cfg, h.data)

	body := joinNonEmpty(
		renderSummary(h.data),
		renderExperience(h.data),
		renderEducation(h.data),
		renderSkills(h.data),
		renderProjects(h.data),
		renderCertifications(h.data),
		renderPublications(h.data),
	)

	return BuildPreamble(mode) + renderHeader(pi) + renderContactLine(pi) + body
}

// AnalyzeDocument implements DocumentAnalyzer for classic resumes.
func (h *ResumeClassic) AnalyzeDocument() AnalysisResult {
	mode := ResolveSpacingMode(h.cfg, h.data)
	sections := map[string]string{
		"summary":        validation.FieldWithFallback(h.data, "summary", []string{"objective", "profile"}, ""),
		"experience":      plainTextOfEntries(h.data, "experience"),
		"education":       plainTextOfEntries(h.data, "education"),
		"projects":        plainTextOfEntries(h.data, "projects"),
		"certifications":  plainTextOfEntries(h.data, "certifications"),
		"publications":    plainTextOfEntries(h.data, "publications"),
	}
	return analyzeSections(sections, mode)
}

// plainTextOfEntries concatenates the textual leaves of a section's
// entries for word/character counting, independent of Typst markup.
func plainTextOfEntries(data entity.Data, section string) string {
	entries, ok := validation.AsSlice(data[section])
	if !ok {
		return ""
	}
	var out string
	for _, raw := range entries {
		entry, ok := validation.AsMap(raw)
		if !ok {
			if s, ok := raw.(string); ok {
				out += s + " "
			}
			continue
		}
		for _, v := range entry {
			if s, ok := v.(string); ok {
				out += s + " "
			}
		}
	}
	return out
}
