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

type PromptRepository struct {
	col *mongo.Collection
}

func NewPromptRepository(db *mongo.Database) *PromptRepository {
	return &PromptRepository{col: db.Collection("prompts")}
}

// PromptFilter narrows List results. Zero values mean "no filter";
// set filters combine with logical AND.
type PromptFilter struct {
	AIModel      string
	Industry     string
	Topic        string
	TrendingOnly bool
}

// Insert stores a new prompt and returns its id.
func (r *PromptRepository) Insert(ctx context.Context, p *models.Prompt) (primitive.ObjectID, error) {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// List returns prompts matching the filter, newest first.
func (r *PromptRepository) List(ctx context.Context, f PromptFilter) ([]models.Prompt, error) {
	filter := bson.M{}
	if f.AIModel != "" {
		filter["ai_model"] = f.AIModel
	}
	if f.Industry != "" {
		filter["industry"] = f.Industry
	}
	if f.Topic != "" {
		filter["topic"] = f.Topic
	}
	if f.TrendingOnly {
		filter["is_trending"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Prompt
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns a single prompt by its ObjectID.
func (r *PromptRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Prompt, error) {
	var p models.Prompt
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDs resolves prompt references, e.g. for collection detail.
// Missing ids are silently absent from the result; references are
// non-owning and may dangle after a prompt delete.
func (r *PromptRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Prompt, error) {
	if len(ids) == 0 {
		return []models.Prompt{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Prompt
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a prompt permanently. Returns mongo.ErrNoDocuments
// when the id does not exist.
func (r *PromptRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncrementCopyCount adds one to copy_count and returns the new value.
func (r *PromptRepository) IncrementCopyCount(ctx context.Context, id primitive.ObjectID) (int64, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Prompt
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"copy_count": 1}, "$set": bson.M{"updated_at": time.Now()}},
		opts,
	).Decode(&p)
	if err != nil {
		return 0, err
	}
	return p.CopyCount, nil
}

// ClearPromptOfDay unsets is_prompt_of_day on every flagged prompt.
// Paired with Insert by the service when a new prompt claims the flag;
// the two steps are not transactional (per-document atomicity only).
func (r *PromptRepository) ClearPromptOfDay(ctx context.Context) error {
	_, err := r.col.UpdateMany(ctx,
		bson.M{"is_prompt_of_day": true},
		bson.M{"$set": bson.M{"is_prompt_of_day": false, "updated_at": time.Now()}},
	)
	return err
}

// FindPromptOfDay returns the explicitly flagged prompt, if any.
func (r *PromptRepository) FindPromptOfDay(ctx context.Context) (*models.Prompt, error) {
	var p models.Prompt
	if err := r.col.FindOne(ctx, bson.M{"is_prompt_of_day": true}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindNewestTrending returns the most recent trending prompt.
func (r *PromptRepository) FindNewestTrending(ctx context.Context) (*models.Prompt, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var p models.Prompt
	if err := r.col.FindOne(ctx, bson.M{"is_trending": true}, opts).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindNewest returns the most recent prompt of any kind.
func (r *PromptRepository) FindNewest(ctx context.Context) (*models.Prompt, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var p models.Prompt
	if err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PromptRef is the slice of a prompt the sitemap job needs.
type PromptRef struct {
	ID        primitive.ObjectID `bson:"_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

// ListRefs returns id + created_at for every prompt, newest first.
func (r *PromptRepository) ListRefs(ctx context.Context) ([]PromptRef, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"_id": 1, "created_at": 1})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []PromptRef
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
