package validation

import (
	"github.com/rendis/resumegen/internal/core/entity"
)

// urlFields are normalized with a scheme fixup by ultra validation.
var urlFields = []string{"website", "linkedin", "github"}

// Ultra runs Standard first, then normalizes email/URLs and collects every
// issue found rather than failing fast (spec.md §4.2). It raises only when
// at least one collected issue is error-severity; under strict mode,
// warnings are promoted to errors too.
func Ultra(docType entity.DocumentType, data entity.Data, strict bool) (entity.Data, *entity.ValidationErrors) {
	normalized, stdErr := Standard(docType, data)
	issues := &entity.ValidationErrors{}
	if stdErr != nil {
		issues.Add(stdErr)
		return nil, issues
	}

	personalInfo, _ := AsMap(normalized["personalInfo"])

	if email, ok := personalInfo["email"].(string); ok {
		candidate := NormalizeEmail(email)
		if !IsValidEmail(candidate) {
			issues.Add(entity.NewFieldError(entity.CodeInvalidEmail, "personalInfo.email", "email is not a valid address"))
		} else {
			personalInfo["email"] = candidate
		}
	}

	if name, ok := personalInfo["name"].(string); ok {
		personalInfo["name"] = NormalizeName(name)
	}

	for _, field := range urlFields {
		v, ok := personalInfo[field].(string)
		if !ok || v == "" {
			continue
		}
		fixed, rewritten := EnsureURLScheme(v)
		personalInfo[field] = fixed
		if rewritten {
			warn := entity.NewFieldError(entity.CodeInvalidURL, "personalInfo."+field, "missing scheme, defaulted to https://").WithWarning()
			issues.Add(warn)
		}
	}

	if strict {
		for _, w := range issues.Warnings {
			w.Severity = entity.SeverityError
		}
		issues.Errors = append(issues.Errors, issues.Warnings...)
	}

	if issues.HasErrors() {
		return nil, issues
	}
	return normalized, issues
}
