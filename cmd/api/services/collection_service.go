package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"promptvault/cmd/api/dto"
	"promptvault/errs"
	"promptvault/models"
	"promptvault/slugs"
	"promptvault/validation"
)

// CollectionStore is the persistence surface the collection service
// needs.
type CollectionStore interface {
	Insert(ctx context.Context, c *models.Collection) error
	List(ctx context.Context, publishedOnly bool) ([]models.Collection, error)
	GetBySlugAndIncrementViews(ctx context.Context, slug string) (*models.Collection, error)
	IncrementDownloads(ctx context.Context, slug string) (int64, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

// PromptResolver resolves prompt references for collection detail
// responses. Satisfied by repositories.PromptRepository.
type PromptResolver interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Prompt, error)
}

// CollectionService encapsulates business logic for curated prompt
// collections.
type CollectionService struct {
	store   CollectionStore
	prompts PromptResolver
}

func NewCollectionService(store CollectionStore, prompts PromptResolver) *CollectionService {
	return &CollectionService{store: store, prompts: prompts}
}

var collectionRequiredFields = []string{"title", "description", "category"}

// ValidateCreateCollection runs the pure field and length checks for a
// collection create request.
func ValidateCreateCollection(rec validation.Record) error {
	if missing := validation.MissingFields(rec, collectionRequiredFields); len(missing) > 0 {
		return errs.NewValidationError(missing)
	}
	title := strings.TrimSpace(rec["title"])
	if n := utf8.RuneCountInString(title); n < 3 || n > 100 {
		return errs.NewBadRequestError("title must be 3-100 characters")
	}
	desc := strings.TrimSpace(rec["description"])
	if n := utf8.RuneCountInString(desc); n < 10 || n > 1000 {
		return errs.NewBadRequestError("description must be 10-1000 characters")
	}
	return nil
}

// ParsePromptIDs parses a comma-separated list of prompt ObjectID hex
// strings. Every entry must parse; empties are skipped.
func ParsePromptIDs(raw string) ([]primitive.ObjectID, error) {
	ids := []primitive.ObjectID{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(part)
		if err != nil {
			return nil, errs.NewBadRequestError("invalid prompt id " + part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CreateCollectionInput carries validated collection fields plus the
// uploaded cover URL.
type CreateCollectionInput struct {
	Title       string
	Description string
	CoverImage  string
	Prompts     []primitive.ObjectID
	Category    string
	IsPublished bool
}

// Create persists a new collection. Slug is always derived from the
// title; collisions get a timestamp suffix, with the unique index as
// the concurrent-create backstop.
func (s *CollectionService) Create(ctx context.Context, in CreateCollectionInput) (*dto.CollectionDTO, error) {
	slug := slugs.FromTitle(in.Title)
	exists, err := s.store.SlugExists(ctx, slug)
	if err != nil {
		return nil, errs.NewUpstreamError(err)
	}
	if exists {
		slug = slugs.WithTimestamp(slug)
	}

	c := &models.Collection{
		Title:       strings.TrimSpace(in.Title),
		Slug:        slug,
		Description: strings.TrimSpace(in.Description),
		CoverImage:  in.CoverImage,
		Prompts:     in.Prompts,
		Category:    strings.TrimSpace(in.Category),
		IsPublished: in.IsPublished,
	}

	if err := s.store.Insert(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.NewConflictError("collection slug already exists")
		}
		return nil, errs.NewUpstreamError(err)
	}

	d := dto.FromCollection(*c)
	return &d, nil
}

// List returns collections newest first without resolving prompt
// references.
func (s *CollectionService) List(ctx context.Context, publishedOnly bool) ([]dto.CollectionDTO, error) {
	cols, err := s.store.List(ctx, publishedOnly)
	if err != nil {
		return nil, errs.NewUpstreamError(err)
	}
	out := make([]dto.CollectionDTO, 0, len(cols))
	for _, c := range cols {
		out = append(out, dto.FromCollection(c))
	}
	return out, nil
}

// GetBySlug returns a collection with its referenced prompts resolved
// into full records, incrementing the views counter as a side effect.
// Dangling references (deleted prompts) are simply absent from the
// resolved list.
func (s *CollectionService) GetBySlug(ctx context.Context, slug string) (*dto.CollectionDTO, error) {
	c, err := s.store.GetBySlugAndIncrementViews(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFoundError("collection")
		}
		return nil, errs.NewUpstreamError(err)
	}

	resolved, err := s.prompts.FindByIDs(ctx, c.Prompts)
	if err != nil {
		return nil, errs.NewUpstreamError(err)
	}

	d := dto.FromCollection(*c)
	d.Prompts = make([]dto.PromptDTO, 0, len(resolved))
	for _, p := range resolved {
		d.Prompts = append(d.Prompts, dto.FromPrompt(p))
	}
	return &d, nil
}

// IncrementDownloads bumps downloads by one and returns the new value.
func (s *CollectionService) IncrementDownloads(ctx context.Context, slug string) (int64, error) {
	count, err := s.store.IncrementDownloads(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, errs.NewNotFoundError("collection")
		}
		return 0, errs.NewUpstreamError(err)
	}
	return count, nil
}

// Delete hard-deletes a collection by slug; referenced prompts are
// untouched.
func (s *CollectionService) Delete(ctx context.Context, slug string) error {
	if err := s.store.DeleteBySlug(ctx, slug); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return errs.NewNotFoundError("collection")
		}
		return errs.NewUpstreamError(err)
	}
	return nil
}
