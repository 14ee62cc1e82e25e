package middleware

import (
	"github.com/gin-gonic/gin"
)

// ExtractUserID requires the user id set by AuthMiddleware and republishes it
// as user_id_validated for idempotency and logging.
func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get("user_id")
		if !exists {
			abortWith(ctx, ErrTokenNotFound)
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			abortWith(ctx, ErrInvalidToken)
			return
		}

		ctx.Set("user_id_validated", userIDStr)
		ctx.Next()
	}
}
