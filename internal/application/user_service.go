package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
	"github.com/oksasatya/go-social-network/pkg/helpers"
	tpl "github.com/oksasatya/go-social-network/pkg/mailer/templates"
)

// UserService handles registration, login and session lookups.
type UserService struct {
	Users    repo.UserRepository
	JWT      *helpers.JWTManager
	Denylist repo.TokenDenylist // nil disables logout revocation
	Notifier *Notifier
	Logger   *logrus.Logger
	Now      func() time.Time
}

func NewUserService(users repo.UserRepository, jwt *helpers.JWTManager, denylist repo.TokenDenylist, notifier *Notifier, logger *logrus.Logger) *UserService {
	return &UserService{
		Users:    users,
		JWT:      jwt,
		Denylist: denylist,
		Notifier: notifier,
		Logger:   logger,
		Now:      time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// Register creates a user with a hashed password and a Gravatar avatar.
func (s *UserService) Register(ctx context.Context, in RegisterInput, meta RequestMeta) (*entity.User, error) {
	email := NormalizeEmail(in.Email)
	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := s.now()
	u := &entity.User{
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Password:  hash,
		Avatar:    helpers.GravatarURL(email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		// lost a race against another registration with the same email
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.Notifier.audit(ctx, u, "", entity.AuditRegister, meta, nil)
	s.Notifier.email(ctx, u, tpl.Welcome)
	return u, nil
}

// Login verifies the credentials and issues a token.
func (s *UserService) Login(ctx context.Context, email, password string, meta RequestMeta) (*LoginResult, error) {
	email = NormalizeEmail(email)
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			s.Notifier.audit(ctx, nil, email, entity.AuditLoginFailed, meta, map[string]any{"reason": "unknown_email"})
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		s.Notifier.audit(ctx, u, "", entity.AuditLoginFailed, meta, map[string]any{"reason": "bad_password"})
		return nil, ErrBadCredentials
	}

	token, exp, err := s.JWT.GenerateToken(u.ID, u.Name)
	if err != nil {
		return nil, err
	}
	s.Notifier.audit(ctx, u, "", entity.AuditLogin, meta, nil)
	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

// Me returns the user behind the identity.
func (s *UserService) Me(ctx context.Context, id entity.Identity) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return u, nil
}

// Logout revokes the presented token until it would have expired anyway.
// Revocation is best-effort; without a denylist only the event is recorded.
func (s *UserService) Logout(ctx context.Context, id entity.Identity, meta RequestMeta) {
	if s.Denylist != nil && id.TokenID != "" {
		// zero ExpiresAt keeps the entry forever
		if err := s.Denylist.Revoke(ctx, id.TokenID, id.ExpiresAt); err != nil {
			helpers.LogWarn(s.Logger, "token revoke failed", err, logrus.Fields{"user_id": id.UserID})
		}
	}
	s.Notifier.audit(ctx, &entity.User{ID: id.UserID}, "", entity.AuditLogout, meta, nil)
}
