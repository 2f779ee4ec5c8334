package cache

import "github.com/rendis/resumegen/internal/core/entity"

func sampleRequest() entity.DocumentRequest {
	return entity.DocumentRequest{
		DocumentType: entity.DocumentTypeResume,
		Template:     "classic",
		Format:       entity.FormatPDF,
		Data: entity.Data{
			"personalInfo": map[string]any{"name": "Ada Lovelace", "email": "ada@example.com"},
			"experience": []any{
				map[string]any{"position": "Engineer", "startDate": "2020-01", "endDate": "Present"},
			},
		},
	}
}
