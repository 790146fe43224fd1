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

type CollectionRepository struct {
	col *mongo.Collection
}

func NewCollectionRepository(db *mongo.Database) *CollectionRepository {
	return &CollectionRepository{col: db.Collection("collections")}
}

// Insert stores a new collection. A duplicate slug surfaces as a Mongo
// duplicate-key error from the unique index.
func (r *CollectionRepository) Insert(ctx context.Context, c *models.Collection) error {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.Prompts == nil {
		c.Prompts = []primitive.ObjectID{}
	}

	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = id
	}
	return nil
}

// List returns collections newest first, optionally published only.
func (r *CollectionRepository) List(ctx context.Context, publishedOnly bool) ([]models.Collection, error) {
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

	var out []models.Collection
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBySlugAndIncrementViews fetches a collection and bumps its views
// counter in the same document operation.
func (r *CollectionRepository) GetBySlugAndIncrementViews(ctx context.Context, slug string) (*models.Collection, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Collection
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"slug": slug},
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// IncrementDownloads adds one to downloads and returns the new value.
func (r *CollectionRepository) IncrementDownloads(ctx context.Context, slug string) (int64, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Collection
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"slug": slug},
		bson.M{"$inc": bson.M{"downloads": 1}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.Downloads, nil
}

// SlugExists reports whether any collection already uses the slug.
func (r *CollectionRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"slug": slug}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteBySlug removes a collection permanently. Referenced prompts are
// untouched. Returns mongo.ErrNoDocuments when the slug does not exist.
func (r *CollectionRepository) DeleteBySlug(ctx context.Context, slug string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
