package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// streamPathPrefix media responses a browser player may cache and range over
const streamPathPrefix = "/api/files/"

// SecurityHeaders sets the response headers every HMS reply carries. JSON
// replies are additionally marked no-store since they hold marks and feedback.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; media-src 'self'; frame-ancestors 'none'")
		if !strings.HasPrefix(c.Request.URL.Path, streamPathPrefix) {
			h.Set("Cache-Control", "no-store")
		}

		c.Next()
	}
}
