package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID correlates a client call with the access log line
	HeaderRequestID = "X-Request-ID"

	requestIDKey    = "request_id"
	requestIDMaxLen = 64
)

// RequestID tags each request with an id, keeping the caller's when it is
// short printable ASCII.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if !usableRequestID(rid) {
			rid = uuid.NewString()
		}

		c.Set(requestIDKey, rid)
		c.Header(HeaderRequestID, rid)

		c.Next()
	}
}

// GetRequestID id assigned by RequestID, empty outside it
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func usableRequestID(rid string) bool {
	if rid == "" || len(rid) > requestIDMaxLen {
		return false
	}
	for i := 0; i < len(rid); i++ {
		if rid[i] < 0x21 || rid[i] > 0x7e {
			return false
		}
	}
	return true
}
