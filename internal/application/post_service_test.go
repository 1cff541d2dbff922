package application

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-social-network/internal/application/apptest"
	"github.com/oksasatya/go-social-network/internal/domain/entity"
)

type postFixture struct {
	svc   *PostService
	users *apptest.Users
	posts *apptest.Posts
	ann   entity.Identity
	bob   entity.Identity
	admin entity.Identity
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()
	f := &postFixture{users: apptest.NewUsers(), posts: apptest.NewPosts()}
	mk := func(name string, admin bool) entity.Identity {
		u := &entity.User{Name: name, Email: name + "@x.com", Avatar: "//avatar/" + name, IsAdmin: admin}
		require.NoError(t, f.users.Create(context.Background(), u))
		return entity.Identity{UserID: u.ID, UserName: name}
	}
	f.ann = mk("ann", false)
	f.bob = mk("bob", false)
	f.admin = mk("root", true)

	var mu sync.Mutex
	seq := 0
	f.svc = NewPostService(f.posts, f.users, nil)
	f.svc.NewID = func() string {
		mu.Lock()
		defer mu.Unlock()
		seq++
		return fmt.Sprintf("sub%d", seq)
	}
	return f
}

func (f *postFixture) post(t *testing.T, who entity.Identity) *entity.Post {
	t.Helper()
	p, err := f.svc.Create(context.Background(), who, CreatePostInput{Text: "hello"})
	require.NoError(t, err)
	return p
}

func TestCreatePostCopiesAuthor(t *testing.T) {
	f := newPostFixture(t)
	p := f.post(t, f.ann)
	assert.Equal(t, "ann", p.Name)
	assert.Equal(t, "//avatar/ann", p.Avatar)
	assert.Empty(t, p.Likes)
	assert.Empty(t, p.Comments)

	_, err := f.svc.Create(context.Background(), entity.Identity{UserID: "ghost"}, CreatePostInput{Text: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListPostsNewestFirst(t *testing.T) {
	f := newPostFixture(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	f.svc.Now = func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Minute) }

	first := f.post(t, f.ann)
	second := f.post(t, f.bob)

	got, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestDeletePost(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	p := f.post(t, f.ann)
	assert.ErrorIs(t, f.svc.Delete(ctx, f.bob, p.ID), ErrForbidden)
	require.NoError(t, f.svc.Delete(ctx, f.ann, p.ID))
	_, err := f.svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	p = f.post(t, f.bob)
	require.NoError(t, f.svc.Delete(ctx, f.admin, p.ID))

	assert.ErrorIs(t, f.svc.Delete(ctx, f.ann, "missing"), ErrNotFound)
}

func TestLikeUnlike(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	p := f.post(t, f.ann)

	likes, err := f.svc.Like(ctx, f.bob, p.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, f.bob.UserID, likes[0].UserID)

	likes, err = f.svc.Like(ctx, f.ann, p.ID)
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, f.ann.UserID, likes[0].UserID, "newest like first")

	_, err = f.svc.Like(ctx, f.bob, p.ID)
	assert.ErrorIs(t, err, ErrAlreadyLiked)

	likes, err = f.svc.Unlike(ctx, f.bob, p.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, f.ann.UserID, likes[0].UserID)

	_, err = f.svc.Unlike(ctx, f.bob, p.ID)
	assert.ErrorIs(t, err, ErrNotLiked)

	_, err = f.svc.Like(ctx, f.bob, "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestConcurrentLikesAreNotLost(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	p := f.post(t, f.ann)

	// the other user's like lands between our read and our save
	once := sync.Once{}
	f.posts.SaveHook = func(*entity.Post) {
		once.Do(func() {
			f.posts.SaveHook = nil
			_, err := f.svc.Like(ctx, f.bob, p.ID)
			require.NoError(t, err)
		})
	}

	likes, err := f.svc.Like(ctx, f.ann, p.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 2)
}

func TestComments(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	p := f.post(t, f.ann)

	comments, err := f.svc.Comment(ctx, f.bob, p.ID, "first")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "bob", comments[0].Name)
	assert.False(t, comments[0].Date.IsZero())
	bobFirst := comments[0].ID

	comments, err = f.svc.Comment(ctx, f.bob, p.ID, "second")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)

	_, err = f.svc.DeleteComment(ctx, f.ann, p.ID, bobFirst)
	assert.ErrorIs(t, err, ErrForbidden)

	// removes the addressed comment, not the author's latest
	comments, err = f.svc.DeleteComment(ctx, f.bob, p.ID, bobFirst)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "second", comments[0].Text)

	_, err = f.svc.DeleteComment(ctx, f.bob, p.ID, bobFirst)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	_, err = f.svc.Comment(ctx, f.bob, "missing", "x")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestLikeRequiresExistingUser(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	p := f.post(t, f.ann)
	_, err := f.svc.Like(ctx, f.bob, p.ID)
	require.NoError(t, err)
	require.NoError(t, f.users.Delete(ctx, f.bob.UserID))

	_, err = f.svc.Unlike(ctx, f.bob, p.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	ghost := entity.Identity{UserID: "ghost"}
	_, err = f.svc.Like(ctx, ghost, p.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	stored, err := f.posts.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, stored.Likes, 1)
	assert.Equal(t, f.bob.UserID, stored.Likes[0].UserID)
}
