package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const adminPasswordHeader = "X-Admin-Password"

// AdminPassword checks the shared admin password against a configured
// bcrypt hash. An empty hash disables the check entirely, leaving only
// the host gate in front of the admin routes.
func AdminPassword(passwordHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if passwordHash == "" {
			c.Next()
			return
		}

		supplied := c.GetHeader(adminPasswordHeader)
		if supplied == "" || bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(supplied)) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin password"})
			return
		}
		c.Next()
	}
}
