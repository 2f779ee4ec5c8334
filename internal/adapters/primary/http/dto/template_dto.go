package dto

import "github.com/rendis/resumegen/internal/core/entity"

// TemplateListResponse is the body of GET /templates and GET /templates/{doc_type}.
type TemplateListResponse struct {
	Templates map[entity.DocumentType][]string `json:"templates"`
}

// TemplateInfoResponse is the body of GET /template-info/{doc_type}/{name}.
type TemplateInfoResponse struct {
	Name           string              `json:"name"`
	DocumentType   entity.DocumentType `json:"document_type"`
	Description    string              `json:"description"`
	RequiredFields []string            `json:"required_fields"`
	TwoColumn      bool                `json:"two_column"`
}

// NewTemplateInfoResponse converts a registry row into its wire shape.
func NewTemplateInfoResponse(info entity.TemplateInfo) TemplateInfoResponse {
	return TemplateInfoResponse{
		Name:           info.Name,
		DocumentType:   info.DocumentType,
		Description:    info.Description,
		RequiredFields: info.RequiredFields,
		TwoColumn:      info.TwoColumn,
	}
}
