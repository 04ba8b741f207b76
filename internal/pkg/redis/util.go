package redis

import (
	"context"
	"time"
)

// SetWithExpiration 写入带过期时间的键, expiration 非正数时不写入
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if expiration <= 0 {
		return nil
	}
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// Exists key 是否存在且未过期
func Exists(ctx context.Context, key string) (bool, error) {
	n, err := Rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
