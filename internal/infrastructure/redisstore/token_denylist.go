package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
)

const keyPrefix = "auth:revoked:"

// TokenDenylist keeps one key per revoked token id, expiring with the token.
type TokenDenylist struct {
	rdb *redis.Client
	now func() time.Time
}

var _ repo.TokenDenylist = (*TokenDenylist)(nil)

func NewTokenDenylist(rdb *redis.Client) *TokenDenylist {
	return &TokenDenylist{rdb: rdb, now: time.Now}
}

func revokedKey(tokenID string) string { return keyPrefix + tokenID }

func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	var ttl time.Duration
	if !until.IsZero() {
		ttl = until.Sub(d.now())
		if ttl <= 0 {
			// already expired, the gate rejects it anyway
			return nil
		}
	}
	return d.rdb.Set(ctx, revokedKey(tokenID), 1, ttl).Err()
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
