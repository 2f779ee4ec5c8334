package dto

import "github.com/rendis/resumegen/internal/core/entity"

// GenerateRequest is the body of POST /generate and POST /generate/async.
type GenerateRequest struct {
	Template        string         `json:"template" binding:"required"`
	Format          string         `json:"format"`
	Data            map[string]any `json:"data" binding:"required"`
	UltraValidation bool           `json:"ultra_validation"`
	SpacingMode     string         `json:"spacing_mode"`
}

// GenerateYAMLRequest is the body of POST /generate-yaml: identical except
// data arrives as a YAML text blob instead of a JSON object (spec.md §6).
type GenerateYAMLRequest struct {
	Template        string `json:"template" binding:"required"`
	Format          string `json:"format"`
	Data            string `json:"data" binding:"required"`
	UltraValidation bool   `json:"ultra_validation"`
	SpacingMode     string `json:"spacing_mode"`
}

// ToDocumentRequest builds the domain request for docType from a
// GenerateRequest body.
func (r GenerateRequest) ToDocumentRequest(docType entity.DocumentType) entity.DocumentRequest {
	return entity.DocumentRequest{
		DocumentType:    docType,
		Template:        r.Template,
		Format:          entity.Format(r.Format),
		Data:            entity.Data(r.Data),
		UltraValidation: r.UltraValidation,
		SpacingMode:     entity.SpacingMode(r.SpacingMode),
	}
}

// ValidateRequest is the body of POST /validate.
type ValidateRequest struct {
	DocumentType    string         `json:"document_type" binding:"required"`
	Data            map[string]any `json:"data" binding:"required"`
	UltraValidation bool           `json:"ultra_validation"`
}

// ValidateResponse reports whether the data passed validation.
type ValidateResponse struct {
	Valid    bool        `json:"valid"`
	Warnings []ErrorBody `json:"warnings,omitempty"`
}

// AnalyzeRequest is the body of POST /analyze and POST /analyze-pdf.
type AnalyzeRequest struct {
	DocumentType string         `json:"document_type" binding:"required"`
	Template     string         `json:"template" binding:"required"`
	Data         map[string]any `json:"data" binding:"required"`
	SpacingMode  string         `json:"spacing_mode"`
}

// JobResponse is the body of GET /jobs/{id} and the 202 response of
// POST /generate/async.
type JobResponse struct {
	ID         string     `json:"job_id"`
	State      string     `json:"state"`
	CreatedAt  string     `json:"created_at"`
	FinishedAt *string    `json:"finished_at,omitempty"`
	Error      *ErrorBody `json:"error,omitempty"`
}

// NewJobResponse converts a domain Job into its wire shape.
func NewJobResponse(j *entity.Job) JobResponse {
	resp := JobResponse{
		ID:        j.ID,
		State:     string(j.State),
		CreatedAt: j.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if j.FinishedAt != nil {
		s := j.FinishedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		resp.FinishedAt = &s
	}
	if j.Error != nil {
		body := NewErrorResponse(j.Error).Error
		resp.Error = &body
	}
	return resp
}
