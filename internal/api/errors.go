package api

import (
	"errors"
	"net/http"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service-layer errors onto HTTP responses.
// Validation failures carry their kind so clients can point at the
// offending field; everything unexpected collapses to a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "kind": vErr.Kind})
		return
	}

	var iErr *service.ImportError
	if errors.As(err, &iErr) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "import validation failed",
			"violations": iErr.Violations,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrMalformedImportDocument):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrTemplateNotFound),
		errors.Is(err, service.ErrDayNotFound),
		errors.Is(err, service.ErrExerciseTemplateNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrSessionExerciseNotFound),
		errors.Is(err, service.ErrCompletedSetNotFound),
		errors.Is(err, service.ErrDayNotInTemplate),
		errors.Is(err, service.ErrPhotoNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUserAlreadyExists):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "an internal error occurred")
	}
}
