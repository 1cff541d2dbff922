package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
)

func TestUserRepositoryMock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get by id", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "social.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "Ann"},
			{Key: "email", Value: "ann@x.com"},
		}))
		r := NewUserRepository(mt.DB, 0)
		u, err := r.GetByID(context.Background(), oid.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), u.ID)
		assert.Equal(mt, "Ann", u.Name)
	})

	mt.Run("missing is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "social.users", mtest.FirstBatch))
		r := NewUserRepository(mt.DB, 0)
		_, err := r.GetByEmail(context.Background(), "nobody@x.com")
		assert.ErrorIs(mt, err, repo.ErrNotFound)
	})

	mt.Run("malformed id is not found", func(mt *mtest.T) {
		r := NewUserRepository(mt.DB, 0)
		_, err := r.GetByID(context.Background(), "not-an-id")
		assert.ErrorIs(mt, err, repo.ErrNotFound)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		r := NewUserRepository(mt.DB, 0)
		err := r.Create(context.Background(), &entity.User{Name: "Ann", Email: "ann@x.com"})
		assert.ErrorIs(mt, err, repo.ErrDuplicate)
	})
}

func TestProfileSaveVersioning(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	p := func() *entity.Profile {
		return &entity.Profile{
			ID:      primitive.NewObjectID().Hex(),
			UserID:  primitive.NewObjectID().Hex(),
			Version: 2,
		}
	}

	mt.Run("match bumps version", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		r := NewProfileRepository(mt.DB, 0)
		prof := p()
		require.NoError(mt, r.Save(context.Background(), prof))
		assert.Equal(mt, int64(3), prof.Version)
	})

	mt.Run("stale version conflicts", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, "social.profiles", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
		)
		r := NewProfileRepository(mt.DB, 0)
		prof := p()
		assert.ErrorIs(mt, r.Save(context.Background(), prof), repo.ErrVersionConflict)
		assert.Equal(mt, int64(2), prof.Version)
	})

	mt.Run("gone is not found", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, "social.profiles", mtest.FirstBatch),
		)
		r := NewProfileRepository(mt.DB, 0)
		assert.ErrorIs(mt, r.Save(context.Background(), p()), repo.ErrNotFound)
	})
}

func TestPostRepositoryDeleteMissing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete reports not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		r := NewPostRepository(mt.DB, 0)
		err := r.Delete(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repo.ErrNotFound)
	})
}

func TestPostRepositoryCascade(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete authored posts", func(mt *mtest.T) {
		user := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))
		r := NewPostRepository(mt.DB, 0)

		n, err := r.DeleteByUserID(context.Background(), user.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)

		ev := mt.GetStartedEvent()
		require.NotNil(mt, ev)
		assert.Equal(mt, "delete", ev.CommandName)
		assert.Equal(mt, "posts", ev.Command.Lookup("delete").StringValue())
		assert.Equal(mt, user, ev.Command.Lookup("deletes", "0", "q", "user").ObjectID())
		assert.Equal(mt, int64(0), ev.Command.Lookup("deletes", "0", "limit").AsInt64())
	})

	mt.Run("pull likes and comments", func(mt *mtest.T) {
		user := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 2},
			bson.E{Key: "nModified", Value: 2},
		))
		r := NewPostRepository(mt.DB, 0)

		n, err := r.PullUserActivity(context.Background(), user.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), n)

		ev := mt.GetStartedEvent()
		require.NotNil(mt, ev)
		assert.Equal(mt, "update", ev.CommandName)
		stmt := ev.Command.Lookup("updates", "0").Document()
		assert.True(mt, stmt.Lookup("multi").Boolean())
		assert.Equal(mt, user, stmt.Lookup("q", "$or", "0", "likes.user").ObjectID())
		assert.Equal(mt, user, stmt.Lookup("q", "$or", "1", "comments.user").ObjectID())
		assert.Equal(mt, user, stmt.Lookup("u", "$pull", "likes", "user").ObjectID())
		assert.Equal(mt, user, stmt.Lookup("u", "$pull", "comments", "user").ObjectID())
		assert.Equal(mt, int64(1), stmt.Lookup("u", "$inc", "version").AsInt64())
	})

	mt.Run("malformed user id touches nothing", func(mt *mtest.T) {
		r := NewPostRepository(mt.DB, 0)
		n, err := r.DeleteByUserID(context.Background(), "not-an-id")
		require.NoError(mt, err)
		assert.Zero(mt, n)
		n, err = r.PullUserActivity(context.Background(), "not-an-id")
		require.NoError(mt, err)
		assert.Zero(mt, n)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}
