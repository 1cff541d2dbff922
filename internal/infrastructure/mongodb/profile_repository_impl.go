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

type ProfileRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

var _ repo.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(db *mongo.Database, timeout time.Duration) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection), timeout: timeout}
}

func (r *ProfileRepository) Create(ctx context.Context, p *entity.Profile) error {
	user, ok := objectID(p.UserID)
	if !ok {
		return repo.ErrNotFound
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	doc := newProfileDoc(p, user)
	doc.ID = primitive.NewObjectID()
	doc.Version = 1
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return mapErr(err)
	}
	p.ID = doc.ID.Hex()
	p.Version = doc.Version
	return nil
}

func (r *ProfileRepository) findOne(ctx context.Context, filter bson.M) (*entity.Profile, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	var doc profileDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapErr(err)
	}
	return doc.toEntity(), nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	oid, ok := objectID(userID)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"user": oid})
}

func (r *ProfileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []profileDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*entity.Profile, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toEntity())
	}
	return out, nil
}

// Save replaces the stored profile if nobody wrote it since p was read.
func (r *ProfileRepository) Save(ctx context.Context, p *entity.Profile) error {
	oid, ok := objectID(p.ID)
	if !ok {
		return repo.ErrNotFound
	}
	user, ok := objectID(p.UserID)
	if !ok {
		return repo.ErrNotFound
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	doc := newProfileDoc(p, user)
	doc.Version = p.Version + 1
	if err := replaceVersioned(ctx, r.coll, oid, p.Version, doc); err != nil {
		return err
	}
	p.Version = doc.Version
	return nil
}

func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	oid, ok := objectID(userID)
	if !ok {
		return repo.ErrNotFound
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	res, err := r.coll.DeleteOne(ctx, bson.M{"user": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Upsert writes p keyed by its user; used by the seeder.
func (r *ProfileRepository) Upsert(ctx context.Context, p *entity.Profile) error {
	user, ok := objectID(p.UserID)
	if !ok {
		return repo.ErrNotFound
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	doc := newProfileDoc(p, user)
	set := bson.M{
		"company":        doc.Company,
		"website":        doc.Website,
		"location":       doc.Location,
		"designation":    doc.Designation,
		"skills":         doc.Skills,
		"bio":            doc.Bio,
		"githubusername": doc.GithubUsername,
		"experience":     doc.Experience,
		"education":      doc.Education,
		"social":         doc.Social,
		"updatedAt":      doc.UpdatedAt,
	}
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"user": user},
		bson.M{"$set": set, "$inc": bson.M{"version": 1}, "$setOnInsert": bson.M{"createdAt": doc.CreatedAt}},
		options.Update().SetUpsert(true),
	)
	return mapErr(err)
}
