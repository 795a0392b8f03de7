package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

const schemaMigrationHint = "The database schema is behind the application. " +
	"Run migration 000002_incident_response_tracking to add the dispatched and false_alarm statuses " +
	"and the response tracking columns."

// respondError переводит ошибку сервиса в HTTP-ответ
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "authentication_required",
			Message: "Authentication required",
		})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "permission_denied",
			Message: "Your role does not allow this action",
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Resource not found",
		})
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:         "invalid_status",
			Message:       "Invalid status value",
			ValidStatuses: validStatusNames(),
		})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_input",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrStorageDenied):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:      "storage_denied",
			Message:    "The database rejected the update for this user",
			Suggestion: "Check the row-level security policies on the affected table and the user's profile role.",
		})
	case errors.Is(err, service.ErrSchemaMismatch):
		log.WithError(err).Error("Database schema mismatch")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:      "schema_mismatch",
			Message:    "The database does not accept this value yet",
			Suggestion: schemaMigrationHint,
		})
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "internal server error",
		})
	}
}

func respondValidation(c *gin.Context, log *logrus.Entry, err error) {
	log.WithError(err).Warn("Validation failed")
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_failed",
		Message: err.Error(),
	})
}

func respondBadBody(c *gin.Context, log *logrus.Entry, err error) {
	log.WithError(err).Warn("Failed to bind JSON")
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid_request",
		Message: "invalid request body",
	})
}
