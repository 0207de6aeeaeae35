package middleware

import (
	"net/http"
	"strings"

	"solmar/utils"

	"github.com/gin-gonic/gin"
)

// SessionTokenMiddleware guards session mutation endpoints: the caller must
// present the JWT issued when the session was started, and its subject must
// match the session being touched.
func SessionTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		sessionID, err := utils.ExtractSessionIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session token"})
			return
		}

		if param := c.Param("sessionID"); param != "" && param != sessionID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token does not match this booking session"})
			return
		}

		c.Set("sessionID", sessionID)
		c.Next()
	}
}
