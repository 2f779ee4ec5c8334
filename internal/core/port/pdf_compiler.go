// Package port declares the narrow interfaces the orchestrator depends on,
// so the Typst-CLI-subprocess backend (internal/core/typst) can be swapped
// for another compiler implementation without touching orchestration logic
// (spec.md §9 "two compiler backends").
package port

import (
	"context"

	"github.com/rendis/resumegen/internal/core/entity"
)

// PDFCompiler compiles Typst markup to PDF bytes (spec.md §4.5).
type PDFCompiler interface {
	Compile(ctx context.Context, source string) ([]byte, *entity.RenderError)
}
