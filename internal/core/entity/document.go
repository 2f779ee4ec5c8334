// Package entity holds the domain types shared across the rendering pipeline.
package entity

import (
	"fmt"
	"strings"
)

// DocumentType identifies which family of document is being generated.
type DocumentType string

const (
	DocumentTypeResume       DocumentType = "resume"
	DocumentTypeCoverLetter  DocumentType = "cover_letter"
)

// Format is the output artifact format requested by the client.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatTypst Format = "typst"
	FormatDOCX  Format = "docx"
)

// SpacingMode selects page margins, font size, and paragraph leading.
type SpacingMode string

const (
	SpacingNormal        SpacingMode = "normal"
	SpacingCompact        SpacingMode = "compact"
	SpacingUltraCompact   SpacingMode = "ultra-compact"
)

// Data is the open-shape payload a client submits as `data`. It is never a
// fixed struct: section emitters read it through FieldWithFallback so that
// aliased keys (title/position/role, endDate/end_date...) are tolerated.
type Data map[string]any

// DocumentRequest is the client's work order, parsed from the request body.
type DocumentRequest struct {
	DocumentType    DocumentType `json:"document_type"`
	Template        string       `json:"template"`
	Format          Format       `json:"format"`
	Data            Data         `json:"data"`
	UltraValidation bool         `json:"ultra_validation"`
	SpacingMode     SpacingMode  `json:"spacing_mode"`
}

// Normalize fills in the request-level defaults from spec.md §3.
func (r *DocumentRequest) Normalize() {
	if r.Format == "" {
		r.Format = FormatPDF
	}
	if r.SpacingMode == "" {
		r.SpacingMode = SpacingCompact
	}
}

// RenderArtifact is a template helper's output, plus enough metadata for the
// HTTP layer to build a response: filename, content type and, for PDF
// requests, the compiled bytes.
type RenderArtifact struct {
	Format      Format
	Filename    string
	TypstSource string
	Bytes       []byte
	FromCache   bool
}

// Filename builds the suggested download name of spec.md §6:
// {document_type}_{person_name_with_spaces_replaced_by_underscores}.{ext}.
func Filename(docType DocumentType, ext, personName string) string {
	fields := strings.Fields(personName)
	slug := "document"
	if len(fields) > 0 {
		slug = strings.Join(fields, "_")
	}
	return fmt.Sprintf("%s_%s.%s", docType, slug, ext)
}

// ContentType returns the MIME type for the artifact's format.
func (a *RenderArtifact) ContentType() string {
	switch a.Format {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain; charset=utf-8"
	}
}
