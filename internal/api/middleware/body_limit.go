package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

// BodyLimit guards one route's request size. A declared Content-Length over
// maxBytes is refused before any byte is read; chunked bodies are cut off at
// maxBytes and the handler sees *http.MaxBytesError.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
