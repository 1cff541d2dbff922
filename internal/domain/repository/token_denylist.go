package repository

import (
	"context"
	"time"
)

// TokenDenylist remembers revoked token ids until the token would expire anyway.
// A zero until keeps the entry with no expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
