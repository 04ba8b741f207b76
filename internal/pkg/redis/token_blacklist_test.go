package redis

import (
	"SimpleBlog/internal/api/config"
	"SimpleBlog/internal/pkg/consts"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startRedis(t *testing.T) *miniredis.Miniredis {
	mr := miniredis.RunT(t)
	require.NoError(t, InitRedis(config.RedisConfig{Addr: mr.Addr(), PoolSize: 2}))
	t.Cleanup(func() { _ = Rdb.Close() })
	return mr
}

func TestTokenBlacklist(t *testing.T) {
	mr := startRedis(t)
	ctx := context.Background()
	blacklist := NewTokenBlacklist()

	revoked, err := blacklist.IsRevoked(ctx, "sig")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, blacklist.Revoke(ctx, "sig", time.Minute))
	revoked, err = blacklist.IsRevoked(ctx, "sig")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, mr.Exists(consts.TokenRevokedKey+"sig"))

	mr.FastForward(2 * time.Minute)
	revoked, err = blacklist.IsRevoked(ctx, "sig")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestExistsAndExpiration(t *testing.T) {
	mr := startRedis(t)
	ctx := context.Background()

	found, err := Exists(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetWithExpiration(ctx, "skipped", "1", 0))
	assert.False(t, mr.Exists("skipped"))

	require.NoError(t, SetWithExpiration(ctx, "present", "1", time.Minute))
	found, err = Exists(ctx, "present")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, time.Minute, mr.TTL("present"))
}
