package handlers

import (
	"errors"
	"net/http"

	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps service errors to HTTP responses. Validation failures
// carry the full per-field list; conflicts and not-found carry the error
// message; anything else is a generic 500 so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	var fieldErrs *service.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs.Fields})
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]service.FieldError, 0, len(verrs))
		for _, ve := range verrs {
			fields = append(fields, service.FieldError{Field: ve.Field(), Message: "failed " + ve.Tag() + " validation"})
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []service.FieldError{
			{Field: validationErr.Field, Message: validationErr.Message},
		}})
		return
	}

	switch {
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
