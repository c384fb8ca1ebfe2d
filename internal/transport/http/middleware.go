package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminGate compares the "key" query parameter against the configured
// admin secret. Any mismatch aborts with a plain 404 so probing the admin
// paths reveals nothing. An empty configured secret locks the gate shut.
func AdminGate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Query("key")
		if secret == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.Next()
	}
}
