package middleware

import (
	"github.com/gin-gonic/gin"

	"titledb-backend/internal/shared/response"
)

// RequireAdmin allows only admins and superusers through. Must run after
// Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := Principal(c)
		if !ok {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		if !p.IsAdmin() {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
