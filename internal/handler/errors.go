package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news-crud/internal/domain"
	"news-crud/internal/logger"
	"news-crud/internal/validator"
)

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries field-level validation failures.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// respondError maps service errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	switch {
	case validator.IsValidationError(err):
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: validator.ConvertValidationErrors(err)})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "article not found"})
	case errors.Is(err, domain.ErrInvalidReference):
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: map[string]string{
			"reference": "referenced author, category, tag or section does not exist",
		}})
	default:
		logger.FromContext(c.Request.Context()).Error("Request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id must be a positive integer"})
		return 0, false
	}
	return id, true
}
