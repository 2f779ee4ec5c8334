// Package dto holds the wire-shaped request/response bodies of the HTTP
// surface, kept separate from the domain entities they wrap (teacher
// convention: internal/adapters/primary/http/dto).
package dto

import (
	"time"

	"github.com/rendis/resumegen/internal/core/entity"
)

// ErrorBody is the error envelope of spec.md §6.
type ErrorBody struct {
	Code         string         `json:"code"`
	Category     string         `json:"category"`
	Severity     string         `json:"severity"`
	Title        string         `json:"title"`
	Message      string         `json:"message"`
	SuggestedFix string         `json:"suggestedFix,omitempty"`
	Timestamp    string         `json:"timestamp"`
	Context      map[string]any `json:"context,omitempty"`
}

// ErrorResponse wraps ErrorBody under the top-level "error" key.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// NewErrorResponse builds the error envelope from a domain RenderError.
func NewErrorResponse(err *entity.RenderError) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{
		Code:         err.Code,
		Category:     string(err.Category),
		Severity:     string(err.Severity),
		Title:        err.Title,
		Message:      err.Message,
		SuggestedFix: err.SuggestedFix,
		Timestamp:    err.Timestamp.Format(time.RFC3339),
		Context:      err.Context,
	}}
}

// BannerResponse is the GET / service banner.
type BannerResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// HealthResponse is the GET /health liveness payload.
type HealthResponse struct {
	Status        string `json:"status"`
	CompilerReady bool   `json:"compiler_ready"`
	CacheConnected bool  `json:"cache_connected"`
}

// MetricsResponse is the GET /metrics cache-stats payload (spec.md §4.7).
type MetricsResponse struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Total   int64   `json:"total"`
	HitRate float64 `json:"hit_rate"`
	Errors  int64   `json:"errors"`
	Cache   struct {
		Connected bool `json:"connected"`
	} `json:"cache"`
}
