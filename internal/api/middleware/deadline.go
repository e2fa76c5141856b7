package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadDeadline moves the connection's read and write deadlines past the
// server-wide timeouts for routes that take large bodies. read bounds receiving
// the body, write bounds the whole response.
func UploadDeadline(read, write time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := http.NewResponseController(c.Writer)
		now := time.Now()
		if err := rc.SetReadDeadline(now.Add(read)); err != nil {
			logger.Warn("extending read deadline failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
		if err := rc.SetWriteDeadline(now.Add(write)); err != nil {
			logger.Warn("extending write deadline failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
		c.Next()
	}
}
