package registry

import (
	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/helpers"
)

// registerBuiltins populates r with the templates shipped out of the box.
// Adding a new template is a single call here; nothing elsewhere needs to
// change (spec.md §4.3).
func registerBuiltins(r *Registry) {
	r.register(entity.DocumentTypeResume, "classic", entity.TemplateInfo{
		Description:    "Single-column résumé with summary, experience, education, skills.",
		RequiredFields: helpers.ResumeClassicRequiredFields,
		TwoColumn:      false,
	}, func(data entity.Data, cfg helpers.Config) helpers.Helper {
		return helpers.NewResumeClassic(data, cfg)
	})

	r.register(entity.DocumentTypeResume, "two-column", entity.TemplateInfo{
		Description:    "Sidebar/main-column résumé: contact, skills, and education in the sidebar.",
		RequiredFields: helpers.ResumeTwoColumnRequiredFields,
		TwoColumn:      true,
	}, func(data entity.Data, cfg helpers.Config) helpers.Helper {
		return helpers.NewResumeTwoColumn(data, cfg)
	})

	r.register(entity.DocumentTypeCoverLetter, "classic", entity.TemplateInfo{
		Description:    "Standard cover letter with salutation, dated header, and closing.",
		RequiredFields: helpers.CoverLetterRequiredFields,
		TwoColumn:      false,
	}, func(data entity.Data, cfg helpers.Config) helpers.Helper {
		return helpers.NewCoverLetter(data, cfg)
	})
}
