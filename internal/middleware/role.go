package middleware

import (
	"net/http"

	"nextassist/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has the specified role.
// This is the server-side form of the SPA's role-gated redirect: a
// manager hitting an assistant route gets 403, and vice versa.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ManagerOnly middleware requires the manager role
func ManagerOnly() gin.HandlerFunc {
	return RequireRole("manager")
}

// AssistantOnly middleware requires the assistant role
func AssistantOnly() gin.HandlerFunc {
	return RequireRole("assistant")
}
