package apperrors

import (
	"errors"
	"net/http"

	"findteam/internal/util/logger"

	"github.com/gin-gonic/gin"
)

// Respond maps a service error onto the HTTP surface. AuthErrors and
// permission errors both come back as 403, validation as 406 and
// conflicts as 400, matching the external contract of the API.
func Respond(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrValidation):
		ctx.JSON(http.StatusNotAcceptable, gin.H{"error": err.Error()})
	case errors.Is(err, ErrConflict):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.GetLogger().Error("request failed", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
