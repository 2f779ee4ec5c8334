// Package helpers implements the template helper layer (spec.md §4.4): one
// helper per (document_type, template) pair, each a composition of small
// section emitters that assemble Typst markup from validated request data.
package helpers

import (
	"github.com/rendis/resumegen/internal/core/entity"
)

// Config carries per-render settings a helper needs besides the request
// data itself.
type Config struct {
	// SpacingMode overrides data-derived spacing when non-empty, per the
	// lookup order documented in spec.md §4.4.2.
	SpacingMode entity.SpacingMode
}

// Helper is the contract every template implementation satisfies
// (spec.md §4.4).
type Helper interface {
	// ValidateData raises with the helper's own required-field codes. It
	// must be idempotent: calling it twice produces the same verdict.
	ValidateData() *entity.RenderError

	// Render returns complete Typst markup. It never raises for data that
	// is optional but missing — the corresponding section is omitted.
	Render() string

	// RequiredFields lists the dotted paths this helper cannot render
	// without.
	RequiredFields() []string

	// TemplateType identifies which document family this helper renders.
	TemplateType() entity.DocumentType
}

// DocumentAnalyzer is implemented by helpers that support content-density
// analysis (spec.md §4.4.4). Not every helper need implement it.
type DocumentAnalyzer interface {
	AnalyzeDocument() AnalysisResult
}
