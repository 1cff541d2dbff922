package repository

import (
	"context"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
)

// ProfileRepository stores one profile document per user.
// Save replaces the whole document when its version still matches and bumps it.
type ProfileRepository interface {
	Create(ctx context.Context, p *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	List(ctx context.Context) ([]*entity.Profile, error)
	Save(ctx context.Context, p *entity.Profile) error
	DeleteByUserID(ctx context.Context, userID string) error
}
