package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
)

type PostRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

var _ repo.PostRepository = (*PostRepository)(nil)

func NewPostRepository(db *mongo.Database, timeout time.Duration) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection), timeout: timeout}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	doc, ok := newPostDoc(p)
	if !ok {
		return repo.ErrNotFound
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	doc.ID = primitive.NewObjectID()
	doc.Version = 1
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return mapErr(err)
	}
	p.ID = doc.ID.Hex()
	p.Version = doc.Version
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repo.ErrNotFound
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	var doc postDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapErr(err)
	}
	return doc.toEntity(), nil
}

// List returns every post, newest first.
func (r *PostRepository) List(ctx context.Context) ([]*entity.Post, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []postDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*entity.Post, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toEntity())
	}
	return out, nil
}

// Save replaces the stored post if nobody wrote it since p was read.
func (r *PostRepository) Save(ctx context.Context, p *entity.Post) error {
	oid, ok := objectID(p.ID)
	if !ok {
		return repo.ErrNotFound
	}
	doc, ok := newPostDoc(p)
	if !ok {
		return repo.ErrNotFound
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	doc.Version = p.Version + 1
	if err := replaceVersioned(ctx, r.coll, oid, p.Version, doc); err != nil {
		return err
	}
	p.Version = doc.Version
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return repo.ErrNotFound
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PostRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	oid, ok := objectID(userID)
	if !ok {
		return 0, nil
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	res, err := r.coll.DeleteMany(ctx, bson.M{"user": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// PullUserActivity removes the user's likes and comments in one pass and
// bumps the version so in-flight read-modify-write cycles retry.
func (r *PostRepository) PullUserActivity(ctx context.Context, userID string) (int64, error) {
	oid, ok := objectID(userID)
	if !ok {
		return 0, nil
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"$or": bson.A{
			bson.M{"likes.user": oid},
			bson.M{"comments.user": oid},
		}},
		bson.M{
			"$pull": bson.M{
				"likes":    bson.M{"user": oid},
				"comments": bson.M{"user": oid},
			},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
