// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"artisanhub/database/repository"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
)

// ActingUserKey is the gin context key the authenticated user is stored under.
const ActingUserKey = "actingUser"

// AuthMiddleware resolves the acting user from a Bearer token and stores the
// full user record in the request context. The token names the user; it is
// not proof of credentials (login never checks any).
func AuthMiddleware(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		account, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}

		c.Set(ActingUserKey, *account)
		c.Next()
	}
}
