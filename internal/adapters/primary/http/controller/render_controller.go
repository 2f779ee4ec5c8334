package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/rendis/resumegen/internal/adapters/primary/http/dto"
	"github.com/rendis/resumegen/internal/adapters/primary/http/middleware"
	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/helpers"
	"github.com/rendis/resumegen/internal/core/jobqueue"
	"github.com/rendis/resumegen/internal/core/orchestrator"
	"github.com/rendis/resumegen/internal/core/registry"
	"github.com/rendis/resumegen/internal/core/validation"
	"github.com/rendis/resumegen/internal/metrics"
)

// RenderController handles the synchronous and async document-generation
// endpoints, sharing a single Orchestrator with the job queue and CLI.
type RenderController struct {
	orch     *orchestrator.Orchestrator
	registry *registry.Registry
	queue    *jobqueue.Queue
}

// NewRenderController builds a RenderController.
func NewRenderController(orch *orchestrator.Orchestrator, reg *registry.Registry, queue *jobqueue.Queue) *RenderController {
	return &RenderController{orch: orch, registry: reg, queue: queue}
}

// RegisterRoutes registers the render-family routes.
func (c *RenderController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/validate", c.Validate)
	rg.POST("/generate", c.Generate)
	rg.POST("/generate-yaml", c.GenerateYAML)
	rg.POST("/generate/async", c.GenerateAsync)
	rg.POST("/analyze", c.Analyze)
	rg.POST("/analyze-pdf", c.AnalyzePDF)
}

// Generate runs the spec.md §4.8 pipeline synchronously. The document type
// comes from the "document_type" query parameter (resume when absent); the
// client selects the output via the body's "format".
func (c *RenderController) Generate(ctx *gin.Context) {
	var body dto.GenerateRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		middleware.RespondError(ctx, entity.NewError(entity.CodeMalformedRequest, "Malformed request", err.Error(), nil))
		return
	}
	docType := entity.DocumentType(ctx.Query("document_type"))
	if docType == "" {
		docType = entity.DocumentTypeResume
	}

	req := body.ToDocumentRequest(docType)
	c.renderAndRespond(ctx, req)
}

// GenerateYAML is identical to Generate except the body's data field is a
// YAML document instead of a JSON object (spec.md §6), parsed with yaml.v3's
// safe Unmarshal (no code execution).
func (c *RenderController) GenerateYAML(ctx *gin.Context) {
	var body dto.GenerateYAMLRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		middleware.RespondError(ctx, entity.NewError(entity.CodeMalformedRequest, "Malformed request", err.Error(), nil))
		return
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(body.Data), &data); err != nil {
		middleware.RespondError(ctx, entity.NewError(entity.CodeMalformedRequest, "Invalid YAML data", err.Error(), nil))
		return
	}

	docType := entity.DocumentType(ctx.Query("document_type"))
	if docType == "" {
		docType = entity.DocumentTypeResume
	}

	req := entity.DocumentRequest{
		DocumentType:    docType,
		Template:        body.Template,
		Format:          entity.Format(body.Format),
		Data:            entity.Data(data),
		UltraValidation: body.UltraValidation,
		SpacingMode:     entity.SpacingMode(body.SpacingMode),
	}
	c.renderAndRespond(ctx, req)
}

func (c *RenderController) renderAndRespond(ctx *gin.Context, req entity.DocumentRequest) {
	result, renderErr := c.orch.Render(ctx.Request.Context(), req)
	if renderErr != nil {
		metrics.RenderRequests.WithLabelValues(string(req.DocumentType), "error").Inc()
		middleware.RespondError(ctx, renderErr)
		return
	}
	metrics.RenderRequests.WithLabelValues(string(req.DocumentType), "success").Inc()

	artifact := result.Artifact
	cacheStatus := "MISS"
	if result.FromCache {
		cacheStatus = "HIT"
	}
	ctx.Header("X-Cache", cacheStatus)

	if artifact.Format == entity.FormatTypst {
		ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(artifact.TypstSource))
		return
	}

	filename := artifact.Filename
	if filename == "" {
		filename = filenameFor(req, artifact)
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, artifact.ContentType(), artifact.Bytes)
}

func filenameFor(req entity.DocumentRequest, artifact *entity.RenderArtifact) string {
	ext := string(artifact.Format)
	if artifact.Format == entity.FormatTypst {
		ext = "typ"
	}
	pi, _ := validation.AsMap(req.Data["personalInfo"])
	name := validation.FieldWithFallback(pi, "name", nil, "")
	return entity.Filename(req.DocumentType, ext, name)
}

// GenerateAsync enqueues the request and returns 202 immediately
// (spec.md §4.9).
func (c *RenderController) GenerateAsync(ctx *gin.Context) {
	var body dto.GenerateRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		middleware.RespondError(ctx, entity.NewError(entity.CodeMalformedRequest, "Malformed request", err.Error(), nil))
		return
	}
	docType := entity.DocumentType(ctx.Query("document_type"))
	if docType == "" {
		docType = entity.DocumentTypeResume
	}

	job, err := c.queue.Submit(ctx.Request.Context(), body.ToDocumentRequest(docType))
	if err != nil {
		middleware.RespondError(ctx, entity.NewError(entity.CodeServiceUnavailable, "Queue full", err.Error(), nil))
		return
	}
	ctx.JSON(http.StatusAccepted, dto.NewJobResponse(job))
}

// Validate runs the validator without rendering (spec.md §4.10).
func (c *RenderController) Validate(ctx *gin.Context) {
	var body dto.ValidateRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		middleware.RespondError(ctx, entity.NewError(entity.CodeMalformedRequest, "Malformed request", err.Error(), nil))
		return
	}

	docType := entity.DocumentType(body.DocumentType)
	data := entity.Data(body.Data)

	if !body.UltraValidation {
		if _, renderErr := validation.Standard(docType, data); renderErr != nil {
			ctx.JSON(http.StatusOK, dto.ValidateResponse{Valid: false, Warnings: []dto.ErrorBody{dto.NewErrorResponse(renderErr).Error}})
			return
		}
		ctx.JSON(http.StatusOK, dto.ValidateResponse{Valid: true})
		return
	}

	_, issues := validation.Ultra(docType, data, false)
	if issues.HasErrors() {
		warnings := make([]dto.ErrorBody, 0, len(issues.Errors))
		for _, e := range issues.Errors {
			warnings = append(warnings, dto.NewErrorResponse(e).Error)
		}
		ctx.JSON(http.StatusOK, dto.ValidateResponse{Valid: false, Warnings: warnings})
		return
	}

	warnings := make([]dto.ErrorBody, 0, len(issues.Warnings))
	for _, w := range issues.Warnings {
		warnings = append(warnings, dto.NewErrorResponse(w).Error)
	}
	ctx.JSON(http.StatusOK, dto.ValidateResponse{Valid: true, Warnings: warnings})
}

// Analyze returns the content-analysis summary without compiling
// (spec.md §4.4.4, §4.10).
func (c *RenderController) Analyze(ctx *gin.Context) {
	c.runAnalysis(ctx)
}

// AnalyzePDF returns the same content metrics; "extended whitespace/density
// analysis" beyond the shared content-analysis summary is out of scope for
// a Typst-CLI-backed renderer, which exposes no page-raster introspection
// API (spec.md §4.10, Non-goal: no OCR/rasterization pipeline).
func (c *RenderController) AnalyzePDF(ctx *gin.Context) {
	c.runAnalysis(ctx)
}

func (c *RenderController) runAnalysis(ctx *gin.Context) {
	var body dto.AnalyzeRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		middleware.RespondError(ctx, entity.NewError(entity.CodeMalformedRequest, "Malformed request", err.Error(), nil))
		return
	}

	docType := entity.DocumentType(body.DocumentType)
	ctor, ok := c.registry.HelperOf(docType, body.Template)
	if !ok {
		middleware.RespondError(ctx, entity.NewTemplateNotFoundError(docType, body.Template, c.registry.AvailableNames(docType)))
		return
	}

	normalized, renderErr := validation.Standard(docType, entity.Data(body.Data))
	if renderErr != nil {
		middleware.RespondError(ctx, renderErr)
		return
	}

	spacingMode := entity.SpacingMode(body.SpacingMode)
	h := ctor(normalized, helpers.Config{SpacingMode: spacingMode})

	analyzer, ok := h.(helpers.DocumentAnalyzer)
	if !ok {
		middleware.RespondError(ctx, entity.NewError(entity.CodeUnsupportedFormat, "Analysis unsupported", "template does not support content analysis", nil))
		return
	}
	ctx.JSON(http.StatusOK, analyzer.AnalyzeDocument())
}
