package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
)

// Errors every store implementation reports in place of driver errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("duplicate key")
	ErrVersionConflict = errors.New("version conflict")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByIDs skips ids that do not resolve.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
}
