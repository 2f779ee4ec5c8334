// Package orchestrator implements the render pipeline of spec.md §4.8:
// validate, resolve the template helper, render Typst markup, compile, and
// cache — deduplicated per cache key with a single-flight latch so
// concurrent requests for the same document compile at most once.
package orchestrator

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/rendis/resumegen/internal/core/cache"
	"github.com/rendis/resumegen/internal/core/docx"
	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/helpers"
	"github.com/rendis/resumegen/internal/core/port"
	"github.com/rendis/resumegen/internal/core/registry"
	"github.com/rendis/resumegen/internal/core/validation"
)

// Orchestrator wires registry, validator, Typst compiler, and cache into
// the single request pipeline shared by the synchronous HTTP path, the job
// queue workers, and the CLI.
type Orchestrator struct {
	registry *registry.Registry
	compiler port.PDFCompiler
	cache    *cache.Cache
	sf       singleflight.Group
	log      *slog.Logger
}

// New builds an Orchestrator.
func New(reg *registry.Registry, compiler port.PDFCompiler, c *cache.Cache, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{registry: reg, compiler: compiler, cache: c, log: log}
}

// Result carries the successful outcome of Render: the artifact and whether
// it was served from the cache. Failures are Render's *entity.RenderError.
type Result struct {
	Artifact  *entity.RenderArtifact
	FromCache bool
}

// Render runs the pipeline of spec.md §4.8 for req and returns the
// rendered artifact (PDF bytes, Typst source, or DOCX bytes).
func (o *Orchestrator) Render(ctx context.Context, req entity.DocumentRequest) (*Result, *entity.RenderError) {
	req.Normalize()

	ctor, ok := o.registry.HelperOf(req.DocumentType, req.Template)
	if !ok {
		return nil, entity.NewTemplateNotFoundError(req.DocumentType, req.Template, o.registry.AvailableNames(req.DocumentType))
	}

	normalized, renderErr := o.validate(req)
	if renderErr != nil {
		return nil, renderErr
	}
	req.Data = normalized

	if req.Format == entity.FormatDOCX {
		bytesOut, filename, err := docx.Generate(req.DocumentType, req.Data)
		if err != nil {
			return nil, err
		}
		return &Result{Artifact: &entity.RenderArtifact{Format: entity.FormatDOCX, Filename: filename, Bytes: bytesOut}}, nil
	}

	pdfKey, err := cache.DeriveKey("pdf", req)
	if err != nil {
		return nil, entity.NewError(entity.CodeUnexpected, "Cache key derivation failed", err.Error(), nil)
	}

	if req.Format == entity.FormatPDF {
		if data, hit := o.cache.GetPDF(ctx, pdfKey); hit {
			return &Result{Artifact: &entity.RenderArtifact{Format: entity.FormatPDF, Bytes: data, FromCache: true}, FromCache: true}, nil
		}
	}

	artifact, sfErr := o.compileOnce(ctx, pdfKey, ctor, req)
	if sfErr != nil {
		return nil, sfErr
	}
	return &Result{Artifact: artifact}, nil
}

// validate runs standard or ultra validation per req.UltraValidation,
// returning the normalized data that replaces req.Data for every
// downstream step (spec.md §4.8 step 3).
func (o *Orchestrator) validate(req entity.DocumentRequest) (entity.Data, *entity.RenderError) {
	if !req.UltraValidation {
		return validation.Standard(req.DocumentType, req.Data)
	}
	normalized, issues := validation.Ultra(req.DocumentType, req.Data, false)
	if issues.HasErrors() {
		return nil, issues.Errors[0]
	}
	return normalized, nil
}

// compileOnce runs the helper-render-compile-cache sequence under a
// per-key single-flight latch, so concurrent requests for the same
// document compile at most once (spec.md §4.7/§4.8).
func (o *Orchestrator) compileOnce(ctx context.Context, pdfKey string, ctor registry.Constructor, req entity.DocumentRequest) (*entity.RenderArtifact, *entity.RenderError) {
	type outcome struct {
		artifact *entity.RenderArtifact
		err      *entity.RenderError
	}

	led := false
	v, err, shared := o.sf.Do(pdfKey, func() (any, error) {
		led = true
		artifact, renderErr := o.renderAndCompile(ctx, pdfKey, ctor, req)
		return outcome{artifact: artifact, err: renderErr}, nil
	})
	if err != nil {
		// singleflight.Do's fn never returns a non-nil error here; this
		// branch exists only to satisfy the interface.
		return nil, entity.NewError(entity.CodeUnexpected, "Unexpected orchestration error", err.Error(), nil)
	}
	out := v.(outcome)
	// A compiler failure does not latch onto followers (spec.md §5 "no
	// shared failure latching"): each caller that only waited on a failed
	// leader makes one independent attempt of its own.
	if shared && !led && out.err != nil && out.err.Code == entity.CodeCompilationFailed {
		return o.renderAndCompile(ctx, pdfKey, ctor, req)
	}
	return out.artifact, out.err
}

func (o *Orchestrator) renderAndCompile(ctx context.Context, pdfKey string, ctor registry.Constructor, req entity.DocumentRequest) (*entity.RenderArtifact, *entity.RenderError) {
	h := ctor(req.Data, helpers.Config{SpacingMode: req.SpacingMode})
	if err := h.ValidateData(); err != nil {
		return nil, err
	}
	source := h.Render()

	typstKey, keyErr := cache.DeriveKey("typst", req)
	if keyErr == nil {
		o.cache.SetTypst(ctx, typstKey, source, 0)
	}

	if req.Format == entity.FormatTypst {
		return &entity.RenderArtifact{Format: entity.FormatTypst, TypstSource: source}, nil
	}

	pdfBytes, compErr := o.compiler.Compile(ctx, source)
	if compErr != nil {
		return nil, compErr
	}

	o.cache.SetPDF(ctx, pdfKey, pdfBytes, 0)

	return &entity.RenderArtifact{Format: entity.FormatPDF, Bytes: pdfBytes}, nil
}
