package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskflowhq/taskflow-api/internal/token"
)

const (
	errNoToken      = "No token provided"
	errInvalidToken = "Invalid token"
)

// Auth is the gate in front of every task route: it extracts the bearer
// token, verifies it, and attaches the identity to the gin context as
// "userID" and "userEmail". It is a pure boundary check and never touches
// the stores.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errNoToken})
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errInvalidToken})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}
