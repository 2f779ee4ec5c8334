package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rendis/resumegen/internal/adapters/primary/http/dto"
	"github.com/rendis/resumegen/internal/adapters/primary/http/middleware"
	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/jobqueue"
)

// JobController exposes the async job lifecycle of spec.md §4.9: status
// polling, result download, and best-effort cancellation.
type JobController struct {
	queue *jobqueue.Queue
}

// NewJobController builds a JobController.
func NewJobController(queue *jobqueue.Queue) *JobController {
	return &JobController{queue: queue}
}

// RegisterRoutes registers the job-family routes.
func (c *JobController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/:id", c.Status)
	rg.GET("/jobs/:id/download", c.Download)
	rg.DELETE("/jobs/:id", c.Cancel)
}

// Status returns a job's current state.
func (c *JobController) Status(ctx *gin.Context) {
	id := ctx.Param("id")
	job, ok := c.queue.Status(ctx.Request.Context(), id)
	if !ok {
		middleware.RespondError(ctx, entity.NewError(entity.CodeResourceNotFound, "Job not found", fmt.Sprintf("no job with id %q", id), nil))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewJobResponse(job))
}

// Download streams a completed job's bytes. It 425s while the job is still
// pending or running, since there is nothing to serve yet, and 404s once
// the result has been reaped past its retention TTL (spec.md §4.9).
func (c *JobController) Download(ctx *gin.Context) {
	id := ctx.Param("id")
	job, ok := c.queue.Status(ctx.Request.Context(), id)
	if !ok {
		middleware.RespondError(ctx, entity.NewError(entity.CodeResourceNotFound, "Job not found", fmt.Sprintf("no job with id %q", id), nil))
		return
	}

	switch job.State {
	case entity.JobPending, entity.JobRunning:
		ctx.AbortWithStatusJSON(http.StatusTooEarly, dto.NewErrorResponse(entity.NewError(
			entity.CodeResourceNotFound, "Job still running", "result not ready yet", map[string]any{"state": job.State},
		)))
		return
	case entity.JobFailed:
		middleware.RespondError(ctx, job.Error)
		return
	case entity.JobCancelled:
		middleware.RespondError(ctx, entity.NewError(entity.CodeResourceNotFound, "Job cancelled", "job was cancelled before completion", nil))
		return
	}

	data, ok := c.queue.Download(ctx.Request.Context(), id)
	if !ok {
		middleware.RespondError(ctx, entity.NewError(entity.CodeResourceNotFound, "Result expired", "job result is no longer available", nil))
		return
	}
	filename := job.Filename
	if filename == "" {
		filename = entity.Filename(job.Request.DocumentType, "pdf", "")
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/pdf", data)
}

// Cancel best-effort cancels a pending job (spec.md §4.9/§9). Jobs already
// running are unaffected.
func (c *JobController) Cancel(ctx *gin.Context) {
	id := ctx.Param("id")
	if !c.queue.Cancel(ctx.Request.Context(), id) {
		middleware.RespondError(ctx, entity.NewError(entity.CodeResourceNotFound, "Cannot cancel", "job is not pending or does not exist", nil))
		return
	}
	ctx.Status(http.StatusNoContent)
}
