package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"promptvault/models"
)

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection("blogs")}
}

// Insert stores a new blog. A duplicate slug surfaces as a Mongo
// duplicate-key error from the unique index.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = id
	}
	return nil
}

// List returns blogs newest first, optionally published only.
func (r *BlogRepository) List(ctx context.Context, publishedOnly bool) ([]models.Blog, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["is_published"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Blog
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBySlugAndIncrementViews fetches a blog and bumps its views counter
// in the same document operation, returning the post-increment state.
func (r *BlogRepository) GetBySlugAndIncrementViews(ctx context.Context, slug string) (*models.Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b models.Blog
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"slug": slug},
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// SlugExists reports whether any blog already uses the slug.
func (r *BlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"slug": slug}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteBySlug removes a blog permanently. Returns mongo.ErrNoDocuments
// when the slug does not exist.
func (r *BlogRepository) DeleteBySlug(ctx context.Context, slug string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
