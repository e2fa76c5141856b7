package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/pkg/jwt"
	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

// principal keys set on the gin context
const (
	CtxUserID     = "user_id"
	CtxUserNumber = "user_number"
	CtxRole       = "role"
	CtxCourseID   = "course_id"
)

// JWTAuth verifies Authorization: Bearer <token> and stores the claims as the request principal.
// Missing or malformed header → 401; bad signature or expired token → 403.
func JWTAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Forbidden(c, "Forbidden")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserNumber, claims.UserNumber)
		c.Set(CtxRole, claims.UserRole)
		if claims.CourseID != nil {
			c.Set(CtxCourseID, *claims.CourseID)
		}

		c.Next()
	}
}

// RoleAuth lets the request through when the principal holds one of allowedRoles
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role == "" {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		for _, r := range allowedRoles {
			if role == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Access denied")
		c.Abort()
	}
}
