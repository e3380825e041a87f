package users_middleware

import (
	"findteam/internal/apperrors"
	users_models "findteam/internal/features/users/models"
	users_services "findteam/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the opaque bearer token and adds the user to
// the context. Missing, malformed and unknown credentials all abort
// with the same forbidden response.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		if token == "" {
			apperrors.Respond(ctx, apperrors.ErrUnauthorized)
			ctx.Abort()
			return
		}

		// Remove "Bearer " prefix if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			apperrors.Respond(ctx, apperrors.ErrUnauthorized)
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

// GetUserFromContext helper function to extract user from gin context
func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	userInterface, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := userInterface.(*users_models.User)

	return user, ok
}
