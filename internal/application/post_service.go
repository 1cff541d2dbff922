package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
)

type PostService struct {
	Posts  repo.PostRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
	NewID  func() string
	Now    func() time.Time
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{
		Posts:  posts,
		Users:  users,
		Logger: logger,
		NewID:  uuid.NewString,
		Now:    time.Now,
	}
}

type CreatePostInput struct {
	Text  string
	Image string
}

func (s *PostService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func (s *PostService) newID() string {
	if s.NewID == nil {
		return uuid.NewString()
	}
	return s.NewID()
}

func (s *PostService) author(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return u, nil
}

// Create publishes a post carrying a copy of the author's name and avatar.
func (s *PostService) Create(ctx context.Context, id entity.Identity, in CreatePostInput) (*entity.Post, error) {
	u, err := s.author(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	p := &entity.Post{
		UserID:    u.ID,
		Text:      in.Text,
		Image:     in.Image,
		Name:      u.Name,
		Avatar:    u.Avatar,
		Likes:     []entity.Like{},
		Comments:  []entity.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]*entity.Post, error) {
	return s.Posts.List(ctx)
}

func (s *PostService) Get(ctx context.Context, postID string) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, postID)
	if err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	return p, nil
}

// Delete removes a post. Only its author or an admin may do so.
func (s *PostService) Delete(ctx context.Context, id entity.Identity, postID string) error {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if p.UserID != id.UserID {
		if err := s.requireAdmin(ctx, id.UserID); err != nil {
			return err
		}
	}
	if err := s.Posts.Delete(ctx, p.ID); err != nil {
		return notFoundAs(err, ErrPostNotFound)
	}
	return nil
}

func (s *PostService) requireAdmin(ctx context.Context, userID string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return notFoundAs(err, ErrNotAuthorized)
	}
	if !u.IsAdmin {
		return ErrNotAuthorized
	}
	return nil
}

// Like adds the caller's like at the head of the list. Returns the updated likes.
func (s *PostService) Like(ctx context.Context, id entity.Identity, postID string) ([]entity.Like, error) {
	if _, err := s.author(ctx, id.UserID); err != nil {
		return nil, err
	}
	likeID := s.newID()
	p, err := s.mutate(ctx, postID, func(p *entity.Post) error {
		if !p.AddLike(entity.Like{ID: likeID, UserID: id.UserID}) {
			return ErrPostAlreadyLiked
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Unlike removes the caller's like. Returns the updated likes.
func (s *PostService) Unlike(ctx context.Context, id entity.Identity, postID string) ([]entity.Like, error) {
	if _, err := s.author(ctx, id.UserID); err != nil {
		return nil, err
	}
	p, err := s.mutate(ctx, postID, func(p *entity.Post) error {
		if !p.RemoveLike(id.UserID) {
			return ErrPostNotLiked
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Comment adds a comment stamped with the caller's current name and avatar.
// Returns the updated comments.
func (s *PostService) Comment(ctx context.Context, id entity.Identity, postID, text string) ([]entity.Comment, error) {
	u, err := s.author(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	c := entity.Comment{
		ID:     s.newID(),
		UserID: u.ID,
		Text:   text,
		Name:   u.Name,
		Avatar: u.Avatar,
		Date:   s.now(),
	}
	p, err := s.mutate(ctx, postID, func(p *entity.Post) error {
		p.AddComment(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// DeleteComment removes one of the caller's own comments. Returns the updated comments.
func (s *PostService) DeleteComment(ctx context.Context, id entity.Identity, postID, commentID string) ([]entity.Comment, error) {
	p, err := s.mutate(ctx, postID, func(p *entity.Post) error {
		c, ok := p.Comment(commentID)
		if !ok {
			return ErrCommentNotFound
		}
		if c.UserID != id.UserID {
			return ErrNotAuthorized
		}
		p.RemoveComment(commentID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.Comments, nil
}

func (s *PostService) mutate(ctx context.Context, postID string, fn func(*entity.Post) error) (*entity.Post, error) {
	return mutateWithRetry(ctx,
		func(ctx context.Context) (*entity.Post, error) { return s.Get(ctx, postID) },
		func(p *entity.Post) error {
			if err := fn(p); err != nil {
				return err
			}
			p.UpdatedAt = s.now()
			return nil
		},
		s.Posts.Save,
	)
}
