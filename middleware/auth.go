package middleware

import (
	"context"
	"net/http"
	"strings"

	"little-lemon/models"
	"little-lemon/utils"

	"github.com/gin-gonic/gin"
)

// GroupChecker reports whether a user currently belongs to a named group.
// Membership is looked up per request because the roster endpoints can change
// it at any time; nothing role-related is trusted from the token itself.
type GroupChecker func(ctx context.Context, userID int, group string) (bool, error)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

func RequireGroup(isMember GroupChecker, group string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt("user_id")
		if userID == 0 {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User identity not found",
			})
			c.Abort()
			return
		}

		ok, err := isMember(c.Request.Context(), userID, group)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to check group membership",
			})
			c.Abort()
			return
		}

		if !ok {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. " + group + " role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
