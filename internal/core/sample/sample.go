// Package sample provides example request payloads used by GET
// /schema/{doc_type} and the resumectl "sample" subcommand (spec.md §6).
package sample

import "github.com/rendis/resumegen/internal/core/entity"

// Data returns a fully-populated example payload for docType, or nil if
// docType is unknown.
func Data(docType entity.DocumentType) map[string]any {
	switch docType {
	case entity.DocumentTypeResume:
		return resume()
	case entity.DocumentTypeCoverLetter:
		return coverLetter()
	default:
		return nil
	}
}

func resume() map[string]any {
	return map[string]any{
		"personalInfo": map[string]any{
			"name":     "Ada Lovelace",
			"email":    "ada@example.com",
			"phone":    "+1 555 0100",
			"location": "London, UK",
			"website":  "https://ada.dev",
			"linkedin": "https://linkedin.com/in/ada",
		},
		"summary": "Mathematician and writer, known for work on Charles Babbage's Analytical Engine.",
		"experience": []any{
			map[string]any{
				"position":     "Lead Analyst",
				"company":      "Analytical Engine Project",
				"location":     "London, UK",
				"startDate":    "1842-01",
				"endDate":      "1843-12",
				"highlights":   []any{"Authored the first published algorithm intended for machine execution", "Translated and annotated Menabrea's memoir"},
			},
		},
		"education": []any{
			map[string]any{
				"degree":         "Private tutelage in mathematics and science",
				"institution":    "Self-directed, under Mary Somerville and Augustus De Morgan",
				"graduationDate": "1840",
			},
		},
		"skills": []any{"Mathematical analysis", "Technical writing", "Algorithm design"},
		"certifications": []any{},
		"projects": []any{
			map[string]any{
				"name":        "Notes on the Analytical Engine",
				"description": "Extended translation with original notes describing a method for computing Bernoulli numbers.",
			},
		},
	}
}

func coverLetter() map[string]any {
	return map[string]any{
		"personalInfo": map[string]any{
			"name":  "Ada Lovelace",
			"email": "ada@example.com",
			"phone": "+1 555 0100",
		},
		"recipient": map[string]any{
			"name":    "Charles Babbage",
			"title":   "Director of Engineering",
			"company": "Analytical Engine Project",
		},
		"body": []any{
			"I am writing to express my interest in contributing to the Analytical Engine project.",
			"My background in mathematics and my published notes on the engine's algorithmic capabilities make me well suited to this work.",
		},
		"closing": "Sincerely,",
	}
}
