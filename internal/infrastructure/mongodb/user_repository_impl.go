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

type UserRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

var _ repo.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *mongo.Database, timeout time.Duration) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection), timeout: timeout}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	doc := newUserDoc(u)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return mapErr(err)
	}
	u.ID = doc.ID.Hex()
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapErr(err)
	}
	return doc.toEntity(), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByIDs returns the users that exist among ids, in no particular order.
func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, ok := objectID(id); ok {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return nil, nil
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*entity.User, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toEntity())
	}
	return out, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
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

// Upsert writes u keyed by email; used by the seeder.
func (r *UserRepository) Upsert(ctx context.Context, u *entity.User) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	doc := newUserDoc(u)
	set := bson.M{
		"name":      doc.Name,
		"password":  doc.Password,
		"avatar":    doc.Avatar,
		"isAdmin":   doc.IsAdmin,
		"updatedAt": doc.UpdatedAt,
	}
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"email": doc.Email},
		bson.M{"$set": set, "$setOnInsert": bson.M{"createdAt": doc.CreatedAt}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return mapErr(err)
	}
	var stored userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": doc.Email}).Decode(&stored); err != nil {
		return mapErr(err)
	}
	*u = *stored.toEntity()
	return nil
}
