package redis

import (
	"SimpleBlog/internal/pkg/consts"
	"context"
	"time"
)

// TokenBlacklist 基于 Redis 的 Token 吊销列表, 实现 security.RevocationList
type TokenBlacklist struct{}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{}
}

func (s *TokenBlacklist) Revoke(ctx context.Context, signature string, ttl time.Duration) error {
	return SetWithExpiration(ctx, consts.TokenRevokedKey+signature, "1", ttl)
}

func (s *TokenBlacklist) IsRevoked(ctx context.Context, signature string) (bool, error) {
	return Exists(ctx, consts.TokenRevokedKey+signature)
}
