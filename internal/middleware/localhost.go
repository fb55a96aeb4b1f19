package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// LocalOnly is the request-origin classifier guarding the admin surface.
// It allows a request only when it plausibly originates from the machine
// the server runs on: the Host header must be localhost, and unless proxy
// headers are explicitly trusted, X-Forwarded-For / X-Real-IP must be
// absent — a proxied request is by definition not local.
//
// This is a coarse, non-cryptographic gate. Deployments that expose the
// admin surface beyond the local machine need real authentication.
func LocalOnly(trustProxyHeaders bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Request.Host
		isLocal := strings.HasPrefix(host, "localhost") || strings.HasPrefix(host, "127.0.0.1")

		forwarded := c.GetHeader("X-Forwarded-For") != "" || c.GetHeader("X-Real-IP") != ""

		if !isLocal || (forwarded && !trustProxyHeaders) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Access denied. Admin routes are only accessible from localhost.",
			})
			return
		}
		c.Next()
	}
}
