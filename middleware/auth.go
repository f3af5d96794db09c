package middleware

import (
	"net/http"
	"strings"

	"medicore/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	CtxUserID = "authUserID"
	CtxRole   = "authRole"
)

// AuthMiddleware extracts the caller's identity from a bearer token and
// stores it on the request context. Account management and token issuance
// live in the surrounding system; this service only needs to know who is
// calling and in what role.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentity(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// CallerID returns the authenticated caller's id.
func CallerID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}

// CallerRole returns the authenticated caller's role.
func CallerRole(c *gin.Context) string {
	return c.GetString(CtxRole)
}
