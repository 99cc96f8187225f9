package handlers

import (
	"errors"
	"net/http"

	"venuely/apperr"
	"venuely/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError translates the service error taxonomy into HTTP
// responses. Infrastructure failures are logged and masked behind a generic
// 500.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr apperr.ValidationError
		authErr       apperr.AuthError
		notFoundErr   apperr.NotFoundError
		conflictErr   apperr.ConflictError
		transitionErr apperr.InvalidTransitionError
		persistErr    apperr.PersistenceError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{"error": transitionErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
	case errors.As(err, &persistErr):
		utils.GetLogger().Error("persistence failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		utils.GetLogger().Error("unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
