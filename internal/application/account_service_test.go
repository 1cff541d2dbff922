package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-social-network/internal/application/apptest"
	"github.com/oksasatya/go-social-network/internal/domain/entity"
	"github.com/oksasatya/go-social-network/pkg/mailer"
	tpl "github.com/oksasatya/go-social-network/pkg/mailer/templates"
)

func TestDeleteAccountCascades(t *testing.T) {
	pf := newPostFixture(t)
	ctx := context.Background()
	profiles := apptest.NewProfiles()
	audit := &apptest.AuditRecorder{}
	mail := &apptest.Publisher{}
	svc := NewAccountService(pf.users, profiles, pf.posts, nil, &Notifier{Audit: audit, Mail: mail}, nil)

	require.NoError(t, profiles.Create(ctx, &entity.Profile{UserID: pf.bob.UserID}))
	require.NoError(t, profiles.Create(ctx, &entity.Profile{UserID: pf.ann.UserID}))
	bobPost := pf.post(t, pf.bob)
	annPost := pf.post(t, pf.ann)
	_, err := pf.svc.Like(ctx, pf.bob, annPost.ID)
	require.NoError(t, err)
	_, err = pf.svc.Comment(ctx, pf.bob, annPost.ID, "nice")
	require.NoError(t, err)
	_, err = pf.svc.Comment(ctx, pf.ann, annPost.ID, "thanks")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, pf.bob, pf.bob.UserID, RequestMeta{}))

	_, err = pf.users.GetByID(ctx, pf.bob.UserID)
	assert.Error(t, err)
	_, err = profiles.GetByUserID(ctx, pf.bob.UserID)
	assert.Error(t, err)
	_, err = pf.posts.GetByID(ctx, bobPost.ID)
	assert.Error(t, err)

	remaining, err := pf.posts.GetByID(ctx, annPost.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining.Likes)
	require.Len(t, remaining.Comments, 1)
	assert.Equal(t, "thanks", remaining.Comments[0].Text)

	_, err = profiles.GetByUserID(ctx, pf.ann.UserID)
	assert.NoError(t, err)

	assert.Equal(t, []string{entity.AuditAccountDeleted}, audit.Actions())
	require.Len(t, mail.Jobs, 1)
	assert.Equal(t, tpl.AccountDeleted, mail.Jobs[0].(mailer.EmailJob).Template)
}

func TestDeleteAccountAuthorization(t *testing.T) {
	pf := newPostFixture(t)
	ctx := context.Background()
	svc := NewAccountService(pf.users, apptest.NewProfiles(), pf.posts, nil, nil, nil)

	err := svc.Delete(ctx, pf.bob, pf.ann.UserID, RequestMeta{})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = pf.users.GetByID(ctx, pf.ann.UserID)
	assert.NoError(t, err, "forbidden delete must not touch the target")

	// no profile is fine
	require.NoError(t, svc.Delete(ctx, pf.admin, pf.ann.UserID, RequestMeta{}))

	err = svc.Delete(ctx, pf.admin, pf.ann.UserID, RequestMeta{})
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = svc.Delete(ctx, entity.Identity{UserID: "ghost"}, "ghost", RequestMeta{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAccountRevokesOwnToken(t *testing.T) {
	pf := newPostFixture(t)
	ctx := context.Background()
	deny := &apptest.Denylist{}
	svc := NewAccountService(pf.users, apptest.NewProfiles(), pf.posts, deny, nil, nil)

	exp := time.Now().Add(time.Hour)
	admin := pf.admin
	admin.TokenID = "jti-admin"
	require.NoError(t, svc.Delete(ctx, admin, pf.ann.UserID, RequestMeta{}))
	revoked, err := deny.IsRevoked(ctx, "jti-admin")
	require.NoError(t, err)
	assert.False(t, revoked, "deleting someone else keeps the caller signed in")

	bob := pf.bob
	bob.TokenID = "jti-bob"
	bob.ExpiresAt = exp
	require.NoError(t, svc.Delete(ctx, bob, bob.UserID, RequestMeta{}))
	revoked, err = deny.IsRevoked(ctx, "jti-bob")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, exp, deny.Revoked["jti-bob"])
}
