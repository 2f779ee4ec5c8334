package entity

// TemplateInfo is a registry row: the static metadata the registry exposes
// for a (document_type, template_name) pair (spec.md §4.3).
type TemplateInfo struct {
	Name            string       `json:"name"`
	DocumentType    DocumentType `json:"document_type"`
	Description     string       `json:"description"`
	RequiredFields  []string     `json:"required_fields"`
	TwoColumn       bool         `json:"two_column"`
}
