package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
	"github.com/oksasatya/go-social-network/pkg/helpers"
	tpl "github.com/oksasatya/go-social-network/pkg/mailer/templates"
)

// AccountService deletes a user together with everything they own.
type AccountService struct {
	Users    repo.UserRepository
	Profiles repo.ProfileRepository
	Posts    repo.PostRepository
	Denylist repo.TokenDenylist // nil when revocation is off
	Notifier *Notifier
	Logger   *logrus.Logger
}

func NewAccountService(users repo.UserRepository, profiles repo.ProfileRepository, posts repo.PostRepository, denylist repo.TokenDenylist, notifier *Notifier, logger *logrus.Logger) *AccountService {
	return &AccountService{Users: users, Profiles: profiles, Posts: posts, Denylist: denylist, Notifier: notifier, Logger: logger}
}

// Delete removes targetID's profile, posts, likes, comments and the user itself.
// Callers may delete themselves; admins may delete anyone. A self-delete also
// revokes the presented token.
func (s *AccountService) Delete(ctx context.Context, caller entity.Identity, targetID string, meta RequestMeta) error {
	if caller.UserID != targetID {
		admin, err := s.Users.GetByID(ctx, caller.UserID)
		if err != nil {
			return notFoundAs(err, ErrNotAuthorized)
		}
		if !admin.IsAdmin {
			return ErrNotAuthorized
		}
	}

	u, err := s.Users.GetByID(ctx, targetID)
	if err != nil {
		return notFoundAs(err, ErrUserNotFound)
	}

	if err := s.Profiles.DeleteByUserID(ctx, u.ID); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	posts, err := s.Posts.DeleteByUserID(ctx, u.ID)
	if err != nil {
		return err
	}
	touched, err := s.Posts.PullUserActivity(ctx, u.ID)
	if err != nil {
		return err
	}
	if err := s.Users.Delete(ctx, u.ID); err != nil {
		return notFoundAs(err, ErrUserNotFound)
	}

	if caller.UserID == u.ID && s.Denylist != nil && caller.TokenID != "" {
		if err := s.Denylist.Revoke(ctx, caller.TokenID, caller.ExpiresAt); err != nil {
			helpers.LogWarn(s.Logger, "token revoke failed", err, logrus.Fields{"user_id": u.ID})
		}
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"user_id":       u.ID,
			"by":            caller.UserID,
			"posts_deleted": posts,
			"posts_touched": touched,
		}).Info("account deleted")
	}
	s.Notifier.audit(ctx, u, "", entity.AuditAccountDeleted, meta, map[string]any{
		"deleted_by":    caller.UserID,
		"posts_deleted": posts,
	})
	s.Notifier.email(ctx, u, tpl.AccountDeleted)
	return nil
}
