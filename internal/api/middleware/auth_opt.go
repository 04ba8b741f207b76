package middleware

import (
	"SimpleBlog/internal/pkg/security"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：公开接口携带合法 Token 时同样注入用户身份, 便于日志关联
func AuthOptionalMiddleware(revocations security.RevocationList) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := security.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}
		signature, err := security.ExtractSignature(token)
		if err != nil {
			c.Next()
			return
		}
		if revoked, err := revocations.IsRevoked(c.Request.Context(), signature); err != nil || revoked {
			c.Next()
			return
		}

		setUser(c, claims)
		c.Next()
	}
}
