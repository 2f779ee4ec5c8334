package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rendis/resumegen/internal/adapters/primary/http/dto"
	"github.com/rendis/resumegen/internal/adapters/primary/http/middleware"
	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/registry"
	"github.com/rendis/resumegen/internal/core/sample"
)

// TemplateController exposes the read-only registry browsing endpoints of
// spec.md §4.3.
type TemplateController struct {
	registry *registry.Registry
}

// NewTemplateController builds a TemplateController.
func NewTemplateController(reg *registry.Registry) *TemplateController {
	return &TemplateController{registry: reg}
}

// RegisterRoutes registers the template-family routes.
func (c *TemplateController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", c.List)
	rg.GET("/templates/:doc_type", c.ListByType)
	rg.GET("/template-info/:doc_type/:name", c.Info)
	rg.GET("/schema/:doc_type", c.Schema)
}

// List returns every registered template name, grouped by document type.
func (c *TemplateController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.TemplateListResponse{Templates: c.registry.List("")})
}

// ListByType returns the template names registered for a single document
// type.
func (c *TemplateController) ListByType(ctx *gin.Context) {
	docType := entity.DocumentType(ctx.Param("doc_type"))
	names := c.registry.AvailableNames(docType)
	if names == nil {
		middleware.RespondError(ctx, entity.NewTemplateNotFoundError(docType, "", nil))
		return
	}
	ctx.JSON(http.StatusOK, dto.TemplateListResponse{Templates: map[entity.DocumentType][]string{docType: names}})
}

// Info returns a single template's metadata (required fields, description,
// two-column flag).
func (c *TemplateController) Info(ctx *gin.Context) {
	docType := entity.DocumentType(ctx.Param("doc_type"))
	name := ctx.Param("name")

	info, ok := c.registry.Get(docType, name)
	if !ok {
		middleware.RespondError(ctx, entity.NewTemplateNotFoundError(docType, name, c.registry.AvailableNames(docType)))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTemplateInfoResponse(info))
}

// Schema returns a fully-populated example payload for docType, used by
// clients to discover the expected request shape (spec.md §6).
func (c *TemplateController) Schema(ctx *gin.Context) {
	docType := entity.DocumentType(ctx.Param("doc_type"))
	data := sample.Data(docType)
	if data == nil {
		middleware.RespondError(ctx, entity.NewTemplateNotFoundError(docType, "", nil))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"document_type": docType, "data": data})
}
