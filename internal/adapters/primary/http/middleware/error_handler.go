package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rendis/resumegen/internal/adapters/primary/http/dto"
	"github.com/rendis/resumegen/internal/core/entity"
)

// RespondError writes a RenderError to the response using the error body
// shape of spec.md §6, mapping to an HTTP status via err.HTTPStatus().
// Adapted from the teacher's centralized HandleError: where the teacher
// dispatches on a big errors.Is switch over sentinel values, our errors
// already carry Category/Severity, so the mapping is a single method call
// instead of a growing switch.
func RespondError(c *gin.Context, err *entity.RenderError) {
	status := err.HTTPStatus()
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "unhandled render error",
			slog.String("code", err.Code), slog.String("message", err.Message))
	}
	c.JSON(status, dto.NewErrorResponse(err))
}
