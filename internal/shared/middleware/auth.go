package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"titledb-backend/internal/shared/auth"
	"titledb-backend/internal/shared/response"
	jwtpkg "titledb-backend/pkg/jwt"
)

const principalKey = "principal"

// Auth validates the bearer token and attaches the Principal to the
// request context. Requests without a valid token get 401.
func Auth(manager *jwtpkg.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user id in token")
			c.Abort()
			return
		}

		c.Set(principalKey, auth.Principal{
			ID:        userID,
			Username:  claims.Username,
			Role:      auth.Role(claims.Role),
			Superuser: claims.Superuser,
		})

		c.Next()
	}
}

// Principal returns the identity set by Auth.
func Principal(c *gin.Context) (auth.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}
