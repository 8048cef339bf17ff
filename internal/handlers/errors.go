package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"piercing-service/internal/services"
	"piercing-service/utils"

	"github.com/gin-gonic/gin"
)

// MapErrorToHTTPStatus maps service errors to an error code and HTTP status.
func MapErrorToHTTPStatus(err error) (string, int) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return "VALIDATION_ERROR", http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return "NOT_FOUND", http.StatusNotFound
	default:
		return "INTERNAL_ERROR", http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	errorCode, httpStatus := MapErrorToHTTPStatus(err)

	var fieldErrs services.ValidationErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(httpStatus, utils.CreateValidationErrorResponse("Request validation failed", fieldErrs))
	case httpStatus == http.StatusInternalServerError:
		slog.Error("internal error", "path", c.FullPath(), "error", err)
		c.JSON(httpStatus, utils.CreateErrorResponse(errorCode, "Internal server error"))
	default:
		c.JSON(httpStatus, utils.CreateErrorResponse(errorCode, err.Error()))
	}
}

func respondBindError(c *gin.Context, err error) {
	slog.Error("error parsing request", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST_FORMAT", "Invalid request body: "+err.Error()))
}
