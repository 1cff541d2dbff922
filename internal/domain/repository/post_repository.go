package repository

import (
	"context"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
)

// PostRepository stores posts with their embedded likes and comments.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	Save(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id string) error
	// DeleteByUserID removes every post authored by userID.
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
	// PullUserActivity strips userID's likes and comments from all posts.
	PullUserActivity(ctx context.Context, userID string) (int64, error)
}
