// Package docx generates Word documents for format=docx requests
// (spec.md §4.6). This path bypasses the Typst pipeline entirely: it
// consumes the same validated data and writes paragraphs directly with
// github.com/fumiama/go-docx.
package docx

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/validation"
)

const (
	headerNameSize    = "32" // 16pt in half-points
	sectionHeaderSize = "24" // 12pt in half-points
	bodySize          = "20" // 10pt in half-points
)

// Generate renders validated data into a DOCX byte stream and a suggested
// filename, per spec.md §4.6.
func Generate(docType entity.DocumentType, data entity.Data) ([]byte, string, *entity.RenderError) {
	w := docx.New().WithDefaultTheme()

	pi, _ := validation.AsMap(data["personalInfo"])
	name := validation.FieldWithFallback(pi, "name", nil, "")

	writeHeader(w, pi, name)

	switch docType {
	case entity.DocumentTypeCoverLetter:
		writeCoverLetterBody(w, data)
	default:
		writeSummary(w, data)
		writeExperience(w, data)
		writeEducation(w, data)
		writeSkills(w, data)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, "", entity.NewError(
			entity.CodeRenderingFailed,
			"DOCX generation failed",
			err.Error(),
			nil,
		)
	}

	filename := entity.Filename(docType, "docx", name)
	return buf.Bytes(), filename, nil
}

func writeHeader(w *docx.Docx, pi map[string]any, name string) {
	namePara := w.AddParagraph().Justification("center")
	namePara.AddText(name).Size(headerNameSize).Bold()

	contact := contactLineParts(pi)
	if contact != "" {
		contactPara := w.AddParagraph().Justification("center")
		contactPara.AddText(contact).Size(bodySize)
	}
}

func contactLineParts(pi map[string]any) string {
	var parts []string
	for _, field := range []string{"email", "phone", "location", "website", "linkedin", "github"} {
		if v, ok := pi[field].(string); ok && v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}

func writeSectionHeader(w *docx.Docx, title string) {
	p := w.AddParagraph()
	p.AddText(title).Size(sectionHeaderSize).Bold()
}

func writeSummary(w *docx.Docx, data entity.Data) {
	summary := validation.FieldWithFallback(data, "summary", []string{"objective", "profile"}, "")
	if summary == "" {
		return
	}
	writeSectionHeader(w, "Summary")
	w.AddParagraph().AddText(summary).Size(bodySize)
}

func writeExperience(w *docx.Docx, data entity.Data) {
	entries, ok := validation.AsSlice(data["experience"])
	if !ok || len(entries) == 0 {
		return
	}
	writeSectionHeader(w, "Experience")
	for _, raw := range entries {
		entry, ok := validation.AsMap(raw)
		if !ok {
			continue
		}
		position := validation.FieldWithFallback(entry, "position", []string{"title", "role"}, "")
		company := validation.FieldWithFallback(entry, "company", []string{"employer", "organization"}, "")
		dateRange := dateRangeOf(entry)

		titleLine := w.AddParagraph()
		titleLine.AddText(position).Bold()
		if dateRange != "" {
			titleLine.AddTab()
			titleLine.AddText(dateRange).Italic()
		}

		if company != "" {
			w.AddParagraph().AddText(company)
		}

		writeBullets(w, entry, []string{"highlights", "bullets", "responsibilities"})
	}
}

func writeEducation(w *docx.Docx, data entity.Data) {
	entries, ok := validation.AsSlice(data["education"])
	if !ok || len(entries) == 0 {
		return
	}
	writeSectionHeader(w, "Education")
	for _, raw := range entries {
		entry, ok := validation.AsMap(raw)
		if !ok {
			continue
		}
		degree := validation.FieldWithFallback(entry, "degree", []string{"qualification"}, "")
		institution := validation.FieldWithFallback(entry, "institution", []string{"school", "university"}, "")
		dateRange := dateRangeOf(entry)
		if dateRange == "" {
			dateRange, _ = entry["graduationDate"].(string)
		}

		line := w.AddParagraph()
		line.AddText(degree).Bold()
		if dateRange != "" {
			line.AddTab()
			line.AddText(dateRange).Italic()
		}
		if institution != "" {
			w.AddParagraph().AddText(institution)
		}
		if gpa, ok := entry["gpa"].(string); ok && gpa != "" {
			w.AddParagraph().AddText("GPA: " + gpa)
		}
	}
}

func writeSkills(w *docx.Docx, data entity.Data) {
	raw, exists := data["skills"]
	if !exists {
		return
	}
	switch v := raw.(type) {
	case []any:
		if len(v) == 0 {
			return
		}
		writeSectionHeader(w, "Skills")
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				items = append(items, s)
			}
		}
		w.AddParagraph().AddText(strings.Join(items, ", "))
	case map[string]any:
		if len(v) == 0 {
			return
		}
		writeSectionHeader(w, "Skills")
		for category, raw := range v {
			items, ok := validation.AsSlice(raw)
			if !ok || len(items) == 0 {
				continue
			}
			rendered := make([]string, 0, len(items))
			for _, item := range items {
				if s, ok := item.(string); ok && s != "" {
					rendered = append(rendered, s)
				}
			}
			p := w.AddParagraph()
			p.AddText(category + ": ").Bold()
			p.AddText(strings.Join(rendered, ", "))
		}
	}
}

func writeBullets(w *docx.Docx, entry map[string]any, aliases []string) {
	for _, alias := range aliases {
		items, ok := validation.AsSlice(entry[alias])
		if !ok || len(items) == 0 {
			continue
		}
		for _, item := range items {
			if s, ok := item.(string); ok && s != "" {
				w.AddParagraph().AddText("• " + s)
			}
		}
		return
	}
}

func writeCoverLetterBody(w *docx.Docx, data entity.Data) {
	if date, ok := data["date"].(string); ok && date != "" {
		w.AddParagraph().AddText(date)
	}

	recipient, _ := validation.AsMap(data["recipient"])
	w.AddParagraph().AddText(salutationOf(recipient))

	switch body := data["body"].(type) {
	case string:
		w.AddParagraph().AddText(body)
	case []any:
		for _, p := range body {
			if s, ok := p.(string); ok && s != "" {
				w.AddParagraph().AddText(s)
			}
		}
	}

	closing := validation.FieldWithFallback(data, "closing", nil, "Sincerely,")
	w.AddParagraph().AddText(closing)
}

func salutationOf(recipient map[string]any) string {
	if name, _ := recipient["name"].(string); name != "" {
		return "Dear " + name + ","
	}
	if title, _ := recipient["title"].(string); title != "" {
		return "Dear " + title + ","
	}
	if company, _ := recipient["company"].(string); company != "" {
		return "Dear Hiring Manager at " + company + ","
	}
	return "Dear Hiring Manager,"
}

func dateRangeOf(entry map[string]any) string {
	start, _ := entry["startDate"].(string)
	end, _ := entry["endDate"].(string)
	if start == "" && end == "" {
		return ""
	}
	if end == "" {
		end = "Present"
	}
	if start == "" {
		return end
	}
	return start + " - " + end
}
