package validation

import (
	"fmt"

	"github.com/rendis/resumegen/internal/core/entity"
)

// dateFieldNames are the keys checked against IsValidDateShape wherever they
// appear on an experience or education entry.
var dateFieldNames = []string{"startDate", "endDate", "graduationDate"}

// Standard runs the structural/semantic checks of spec.md §4.2 ("standard
// validation") and fails fast on the first disqualifying error (spec.md §7).
// It returns a normalized copy; the caller's original data is untouched.
func Standard(docType entity.DocumentType, data entity.Data) (entity.Data, *entity.RenderError) {
	normalized := deepCopyData(data)

	personalInfo, ok := AsMap(normalized["personalInfo"])
	if !ok || len(personalInfo) == 0 {
		if _, exists := normalized["personalInfo"]; !exists {
			return nil, entity.NewFieldError(entity.CodeMissingPersonalInfo, "personalInfo", "personalInfo is required")
		}
		return nil, entity.NewFieldError(entity.CodeMissingPersonalInfo, "personalInfo", "personalInfo must be an object")
	}

	name, _ := personalInfo["name"].(string)
	if name == "" {
		return nil, entity.NewFieldError(entity.CodeMissingPersonalInfo, "personalInfo.name", "personalInfo.name is required")
	}
	email, _ := personalInfo["email"].(string)
	if email == "" {
		return nil, entity.NewFieldError(entity.CodeMissingPersonalInfo, "personalInfo.email", "personalInfo.email is required")
	}

	if docType == entity.DocumentTypeCoverLetter {
		if err := validateCoverLetterBody(normalized); err != nil {
			return nil, err
		}
	}

	if err := validateDateShapedEntries(normalized, "experience"); err != nil {
		return nil, err
	}
	if err := validateDateShapedEntries(normalized, "education"); err != nil {
		return nil, err
	}

	normalizeExperienceTitleAlias(normalized)

	return normalized, nil
}

func validateCoverLetterBody(data entity.Data) *entity.RenderError {
	body, exists := data["body"]
	if !exists {
		return entity.NewFieldError(entity.CodeMissingRequiredField, "body", "body is required for cover letters")
	}
	switch v := body.(type) {
	case string:
		if v == "" {
			return entity.NewFieldError(entity.CodeMissingRequiredField, "body", "body must not be empty")
		}
	case []any:
		if len(v) == 0 {
			return entity.NewFieldError(entity.CodeMissingRequiredField, "body", "body must not be empty")
		}
	default:
		return entity.NewFieldError(entity.CodeInvalidType, "body", "body must be a string or an array of paragraphs")
	}
	return nil
}

// validateDateShapedEntries checks every date-shaped field on each entry of
// data[section], which must be an array of objects.
func validateDateShapedEntries(data entity.Data, section string) *entity.RenderError {
	raw, exists := data[section]
	if !exists {
		return nil
	}
	entries, ok := AsSlice(raw)
	if !ok {
		return entity.NewFieldError(entity.CodeInvalidType, section, fmt.Sprintf("%s must be an array", section))
	}
	for i, rawEntry := range entries {
		entry, ok := AsMap(rawEntry)
		if !ok {
			continue
		}
		for _, field := range dateFieldNames {
			v, ok := entry[field].(string)
			if !ok {
				continue
			}
			if !IsValidDateShape(v) {
				path := fmt.Sprintf("%s[%d].%s", section, i, field)
				return entity.NewFieldError(entity.CodeInvalidDate, path, fmt.Sprintf("%q is not a recognized date shape", v))
			}
		}
	}
	return nil
}

// normalizeExperienceTitleAlias copies a legacy "title" field into
// "position" on each experience entry when position is absent, per
// spec.md §4.2.
func normalizeExperienceTitleAlias(data entity.Data) {
	raw, exists := data["experience"]
	if !exists {
		return
	}
	entries, ok := AsSlice(raw)
	if !ok {
		return
	}
	for _, rawEntry := range entries {
		entry, ok := AsMap(rawEntry)
		if !ok {
			continue
		}
		if _, hasPosition := entry["position"]; hasPosition {
			continue
		}
		if title, ok := entry["title"].(string); ok && title != "" {
			entry["position"] = title
		}
	}
}

// deepCopyData makes an independent copy of a Data tree so validation never
// mutates the caller's original (spec.md §3 invariant).
func deepCopyData(data entity.Data) entity.Data {
	copied := deepCopyValue(map[string]any(data))
	m, _ := copied.(map[string]any)
	return entity.Data(m)
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, vv := range val {
			out[k] = deepCopyValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, vv := range val {
			out[i] = deepCopyValue(vv)
		}
		return out
	default:
		return v
	}
}
