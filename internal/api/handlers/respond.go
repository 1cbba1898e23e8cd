package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "shift-planner-backend/internal/errors"
)

// ErrorResponse is the uniform error body returned by every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps the service error taxonomy onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidMonth),
		errors.Is(err, apperrors.ErrInvalidYear),
		errors.Is(err, apperrors.ErrInvalidAvailabilityStatus),
		errors.Is(err, apperrors.ErrInvalidTimeOfDay),
		errors.Is(err, apperrors.ErrInvalidWeekday),
		errors.Is(err, apperrors.ErrInvalidRate),
		errors.Is(err, apperrors.ErrEmptySchedule):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsUpstream(err),
		errors.Is(err, apperrors.ErrSolverNotConfigured),
		errors.Is(err, apperrors.ErrSolverBadStatus),
		errors.Is(err, apperrors.ErrSolverExhausted):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
