package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDenylist(t *testing.T) (*TokenDenylist, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewTokenDenylist(rdb), mr
}

func TestRevokeExpiresWithToken(t *testing.T) {
	d, mr := newTestDenylist(t)
	ctx := context.Background()

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))
	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl := mr.TTL(revokedKey("jti-1"))
	assert.True(t, ttl > 0 && ttl <= time.Minute, "ttl=%s", ttl)

	mr.FastForward(2 * time.Minute)
	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevokeWithoutExpiry(t *testing.T) {
	d, mr := newTestDenylist(t)
	ctx := context.Background()

	require.NoError(t, d.Revoke(ctx, "jti-2", time.Time{}))
	assert.Equal(t, time.Duration(0), mr.TTL(revokedKey("jti-2")))

	mr.FastForward(365 * 24 * time.Hour)
	revoked, err := d.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevokeAlreadyExpired(t *testing.T) {
	d, mr := newTestDenylist(t)
	require.NoError(t, d.Revoke(context.Background(), "jti-3", time.Now().Add(-time.Second)))
	assert.False(t, mr.Exists(revokedKey("jti-3")))
}

func TestIsRevokedUnknown(t *testing.T) {
	d, _ := newTestDenylist(t)
	revoked, err := d.IsRevoked(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestIsRevokedRedisDown(t *testing.T) {
	d, mr := newTestDenylist(t)
	mr.Close()
	_, err := d.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
}
