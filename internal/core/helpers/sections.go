package helpers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rendis/resumegen/internal/core/validation"
)

// sectionHeader renders a level-2 Typst heading for a section title. Titles
// are template-authored labels, not request data, so they are not escaped.
func sectionHeader(title string) string {
	return fmt.Sprintf("== %s\n\n", title)
}

// renderLink emits a Typst link, falling back to the URL itself as display
// text when none is given.
func renderLink(url, display string) string {
	if display == "" {
		display = url
	}
	return fmt.Sprintf("#link(%q)[%s]", url, validation.Escape(display))
}

// displayForURL derives a short label for a contact-line URL field.
func displayForURL(field, url string) string {
	switch field {
	case "linkedin":
		return "LinkedIn"
	case "github":
		return "GitHub"
	default:
		return url
	}
}

// joinNonEmpty joins non-empty parts with a blank line, the standard way a
// helper concatenates its section emitters into the full document body.
func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimRight(p, "\n"))
		}
	}
	return strings.Join(kept, "\n\n")
}

// renderHeader emits the name/title block shared by the résumé templates.
func renderHeader(pi map[string]any) string {
	name := validation.FieldWithFallback(pi, "name", nil, "")
	title := validation.FieldWithFallback(pi, "title", []string{"headline", "tagline"}, "")

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("#align(center)[#text(size: 20pt, weight: \"bold\")[%s]]\n\n", validation.Escape(name)))
	if title != "" {
		sb.WriteString(fmt.Sprintf("#align(center)[%s]\n\n", validation.Escape(title)))
	}
	return sb.String()
}

// renderContactLine renders the pipe-separated contact strip under the name.
func renderContactLine(pi map[string]any) string {
	var parts []string
	if email, _ := pi["email"].(string); email != "" {
		parts = append(parts, validation.Escape(email))
	}
	if phone, _ := pi["phone"].(string); phone != "" {
		parts = append(parts, validation.Escape(phone))
	}
	if location, _ := pi["location"].(string); location != "" {
		parts = append(parts, validation.Escape(location))
	}
	for _, field := range []string{"website", "linkedin", "github"} {
		url, _ := pi[field].(string)
		if url == "" {
			continue
		}
		parts = append(parts, renderLink(url, displayForURL(field, url)))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("#align(center)[%s]\n\n", strings.Join(parts, "  |  "))
}

// renderSummary emits the summary/objective/profile section.
func renderSummary(data map[string]any) string {
	summary := validation.FieldWithFallback(data, "summary", []string{"objective", "profile"}, "")
	if summary == "" {
		return ""
	}
	return sectionHeader("Summary") + validation.Escape(summary)
}

// renderExperience emits the work-experience section.
func renderExperience(data map[string]any) string {
	entries, ok := validation.AsSlice(data["experience"])
	if !ok || len(entries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(sectionHeader("Experience"))
	for _, raw := range entries {
		entry, ok := validation.AsMap(raw)
		if !ok {
			continue
		}
		sb.WriteString(renderExperienceEntry(entry))
	}
	return sb.String()
}

func renderExperienceEntry(entry map[string]any) string {
	position := validation.FieldWithFallback(entry, "position", []string{"title", "role"}, "")
	company := validation.FieldWithFallback(entry, "company", []string{"employer", "organization"}, "")
	dateRange := formatDateRange(entry)

	var sb strings.Builder
	sb.WriteString("#strong[" + validation.Escape(position) + "]")
	if company != "" {
		sb.WriteString(" — " + validation.Escape(company))
	}
	if dateRange != "" {
		sb.WriteString(" #h(1fr) " + validation.Escape(dateRange))
	}
	sb.WriteString("\n\n")
	sb.WriteString(renderBulletList(entry, []string{"highlights", "bullets", "responsibilities"}))
	return sb.String()
}

// renderEducation emits the education section.
func renderEducation(data map[string]any) string {
	entries, ok := validation.AsSlice(data["education"])
	if !ok || len(entries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(sectionHeader("Education"))
	for _, raw := range entries {
		entry, ok := validation.AsMap(raw)
		if !ok {
			continue
		}
		sb.WriteString(renderEducationEntry(entry))
	}
	return sb.String()
}

func renderEducationEntry(entry map[string]any) string {
	degree := validation.FieldWithFallback(entry, "degree", []string{"qualification"}, "")
	institution := validation.FieldWithFallback(entry, "institution", []string{"school", "university"}, "")
	dateRange := formatDateRange(entry)
	if dateRange == "" {
		if grad, ok := entry["graduationDate"].(string); ok && grad != "" {
			dateRange = grad
		}
	}

	var sb strings.Builder
	sb.WriteString("#strong[" + validation.Escape(degree) + "]")
	if institution != "" {
		sb.WriteString(" — " + validation.Escape(institution))
	}
	if dateRange != "" {
		sb.WriteString(" #h(1fr) " + validation.Escape(dateRange))
	}
	sb.WriteString("\n\n")
	return sb.String()
}

// renderSkills emits the skills section, handling both a flat string list
// and a map of category -> []string.
func renderSkills(data map[string]any) string {
	raw, exists := data["skills"]
	if !exists {
		return ""
	}
	switch v := raw.(type) {
	case []any:
		if len(v) == 0 {
			return ""
		}
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				items = append(items, validation.Escape(s))
			}
		}
		if len(items) == 0 {
			return ""
		}
		return sectionHeader("Skills") + strings.Join(items, ", ")
	case map[string]any:
		if len(v) == 0 {
			return ""
		}
		var sb strings.Builder
		sb.WriteString(sectionHeader("Skills"))
		categories := make([]string, 0, len(v))
		for category := range v {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			items, ok := validation.AsSlice(v[category])
			if !ok || len(items) == 0 {
				continue
			}
			rendered := make([]string, 0, len(items))
			for _, item := range items {
				if s, ok := item.(string); ok && s != "" {
					rendered = append(rendered, validation.Escape(s))
				}
			}
			if len(rendered) == 0 {
				continue
			}
			sb.WriteString("#strong[" + validation.Escape(category) + ":] " + strings.Join(rendered, ", ") + "\n\n")
		}
		return sb.String()
	default:
		return ""
	}
}

// renderCertifications emits the certifications section.
func renderCertifications(data map[string]any) string {
	entries, ok := validation.AsSlice(data["certifications"])
	if !ok || len(entries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(sectionHeader("Certifications"))
	for _, raw := range entries {
		if entry, ok := validation.AsMap(raw); ok {
			name := validation.FieldWithFallback(entry, "name", []string{"title"}, "")
			issuer := validation.FieldWithFallback(entry, "issuer", []string{"organization"}, "")
			line := validation.Escape(name)
			if issuer != "" {
				line += " — " + validation.Escape(issuer)
			}
			sb.WriteString("- " + line + "\n")
		} else if s, ok := raw.(string); ok && s != "" {
			sb.WriteString("- " + validation.Escape(s) + "\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// renderProjects emits the projects section.
func renderProjects(data map[string]any) string {
	entries, ok := validation.AsSlice(data["projects"])
	if !ok || len(entries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(sectionHeader("Projects"))
	for _, raw := range entries {
		entry, ok := validation.AsMap(raw)
		if !ok {
			continue
		}
		name := validation.FieldWithFallback(entry, "name", []string{"title"}, "")
		description := validation.FieldWithFallback(entry, "description", []string{"summary"}, "")
		sb.WriteString("#strong[" + validation.Escape(name) + "]")
		if url, ok := entry["url"].(string); ok && url != "" {
			sb.WriteString(" — " + renderLink(url, ""))
		}
		sb.WriteString("\n\n")
		if description != "" {
			sb.WriteString(validation.Escape(description) + "\n\n")
		}
		sb.WriteString(renderBulletList(entry, []string{"highlights", "bullets"}))
	}
	return sb.String()
}

// renderPublications emits the publications section.
func renderPublications(data map[string]any) string {
	entries, ok := validation.AsSlice(data["publications"])
	if !ok || len(entries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(sectionHeader("Publications"))
	for _, raw := range entries {
		entry, ok := validation.AsMap(raw)
		if !ok {
			continue
		}
		title := validation.FieldWithFallback(entry, "title", nil, "")
		venue := validation.FieldWithFallback(entry, "venue", []string{"publisher", "journal"}, "")
		line := validation.Escape(title)
		if venue != "" {
			line += " — " + validation.Escape(venue)
		}
		sb.WriteString("- " + line + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// renderBulletList renders the first populated alias in aliases as a Typst
// bullet list; returns "" when none of the aliases hold non-empty data.
func renderBulletList(entry map[string]any, aliases []string) string {
	for _, alias := range aliases {
		items, ok := validation.AsSlice(entry[alias])
		if !ok || len(items) == 0 {
			continue
		}
		var sb strings.Builder
		for _, item := range items {
			if s, ok := item.(string); ok && s != "" {
				sb.WriteString("- " + validation.Escape(s) + "\n")
			}
		}
		sb.WriteString("\n")
		return sb.String()
	}
	return ""
}

func formatDateRange(entry map[string]any) string {
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
	return start + " – " + end
}
