package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apa-platform/apacore/pkg/services"
)

// mapServiceError maps service-layer errors to an HTTP status and message.
func mapServiceError(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, "resource not found"
	}
	if errors.Is(err, services.ErrInvalidState) {
		return http.StatusConflict, "resource is not in a valid state for this operation"
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, "resource already exists"
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}

// serviceError writes the mapped error response.
func serviceError(c *gin.Context, err error) {
	status, msg := mapServiceError(err)
	c.JSON(status, gin.H{"error": msg})
}
