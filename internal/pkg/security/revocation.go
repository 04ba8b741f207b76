package security

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// RevocationList 已注销 Token 的签名集合
type RevocationList interface {
	Revoke(ctx context.Context, signature string, ttl time.Duration) error
	IsRevoked(ctx context.Context, signature string) (bool, error)
}

// revocationSweepInterval 过期签名的清理周期
const revocationSweepInterval = 10 * time.Minute

// MemoryRevocationList 未启用 Redis 时的进程内实现, 多实例部署下各实例互不可见
type MemoryRevocationList struct {
	signatures *cache.Cache
}

func NewMemoryRevocationList() *MemoryRevocationList {
	return &MemoryRevocationList{
		signatures: cache.New(cache.NoExpiration, revocationSweepInterval),
	}
}

// Revoke 签名保留到 Token 自然过期, ttl 非正数时立即失效
func (s *MemoryRevocationList) Revoke(_ context.Context, signature string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.signatures.Set(signature, struct{}{}, ttl)
	return nil
}

func (s *MemoryRevocationList) IsRevoked(_ context.Context, signature string) (bool, error) {
	_, found := s.signatures.Get(signature)
	return found, nil
}
