package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"streamhub/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer JWT and resolves the caller's identity into
// the Gin context as "email" and "userID" (primitive.ObjectID)
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Authorization token format"})
			c.Abort()
			return
		}
		token := parts[1]

		valid, email, err := utils.ValidateTokenAndFetchEmail(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": fmt.Sprintf("Token validation error: %v", err)})
			c.Abort()
			return
		}
		if !valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		userID, err := utils.GetUserIDFromEmail(ctx, email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		c.Set("email", email)
		c.Set("userID", userID)
		c.Next()
	}
}
