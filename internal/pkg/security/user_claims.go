package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret         = []byte("SimpleBlog")
	jwtIssuer         = "SimpleBlog"
	JWTExpirationTime = time.Hour * 24
)

// Configure 使用配置覆盖默认的签名密钥、签发者和有效期
func Configure(secret, issuer string, expiration time.Duration) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if issuer != "" {
		jwtIssuer = issuer
	}
	if expiration > 0 {
		JWTExpirationTime = expiration
	}
}

// UserClaims 定义了我们 Token 中需要包含的业务信息
type UserClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
