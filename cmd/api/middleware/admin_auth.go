package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptvault/cmd/internal/logger"
)

// HeaderAdminKey carries the shared admin secret on mutating requests.
const HeaderAdminKey = "X-Admin-Key"

// AdminAuth gates every state-mutating endpoint on the shared secret.
// It runs before any validation or upload work. The comparison is
// fixed-time (ConstantTimeCompare also rejects length mismatches) and
// the response never says which check failed.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader(HeaderAdminKey)
		if secret == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
			logger.WarnWithFields("admin auth rejected", logger.Fields{
				"client_ip": c.ClientIP(),
				"method":    c.Request.Method,
				"path":      c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
