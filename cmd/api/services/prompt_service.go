package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"promptvault/cmd/api/dto"
	"promptvault/errs"
	"promptvault/models"
	"promptvault/repositories"
	"promptvault/validation"
)

// PromptStore is the persistence surface the prompt service needs.
// Satisfied by repositories.PromptRepository; faked in tests.
type PromptStore interface {
	Insert(ctx context.Context, p *models.Prompt) (primitive.ObjectID, error)
	List(ctx context.Context, f repositories.PromptFilter) ([]models.Prompt, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Prompt, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementCopyCount(ctx context.Context, id primitive.ObjectID) (int64, error)
	ClearPromptOfDay(ctx context.Context) error
	FindPromptOfDay(ctx context.Context) (*models.Prompt, error)
	FindNewestTrending(ctx context.Context) (*models.Prompt, error)
	FindNewest(ctx context.Context) (*models.Prompt, error)
}

// PromptService encapsulates business logic for prompts and DTO mapping.
type PromptService struct {
	store PromptStore
}

func NewPromptService(store PromptStore) *PromptService {
	return &PromptService{store: store}
}

// promptRequiredFields in the order they are reported back to clients.
var promptRequiredFields = []string{
	"title", "description", "promptText", "aiModel", "industry", "topic", "mediaType",
}

// ValidateCreatePrompt runs the pure field checks for a prompt create
// request. Storage-level constraints are not involved.
func ValidateCreatePrompt(rec validation.Record) error {
	if missing := validation.MissingFields(rec, promptRequiredFields); len(missing) > 0 {
		return errs.NewValidationError(missing)
	}
	mt := strings.TrimSpace(rec["mediaType"])
	if mt != models.MediaTypeImage && mt != models.MediaTypeVideo {
		return errs.NewBadRequestError("mediaType must be image or video")
	}
	return nil
}

// CreatePromptInput carries validated, trimmed prompt fields plus the
// asset-host URL assigned during upload.
type CreatePromptInput struct {
	Title          string
	Description    string
	PromptText     string
	NegativePrompt string
	AIModel        string
	Industry       string
	Topic          string
	MediaType      string
	MediaURL       string
	IsTrending     bool
	IsPromptOfDay  bool
}

// Create persists a new prompt. When the incoming record claims the
// prompt-of-the-day flag, every existing holder is cleared first; the
// two steps are sequential, not transactional.
func (s *PromptService) Create(ctx context.Context, in CreatePromptInput) (*dto.PromptDTO, error) {
	if in.IsPromptOfDay {
		if err := s.store.ClearPromptOfDay(ctx); err != nil {
			return nil, errs.NewUpstreamError(err)
		}
	}

	p := &models.Prompt{
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		PromptText:     strings.TrimSpace(in.PromptText),
		NegativePrompt: strings.TrimSpace(in.NegativePrompt),
		AIModel:        strings.TrimSpace(in.AIModel),
		Industry:       strings.TrimSpace(in.Industry),
		Topic:          strings.TrimSpace(in.Topic),
		MediaType:      in.MediaType,
		MediaURL:       in.MediaURL,
		IsTrending:     in.IsTrending,
		IsPromptOfDay:  in.IsPromptOfDay,
	}

	id, err := s.store.Insert(ctx, p)
	if err != nil {
		return nil, errs.NewUpstreamError(err)
	}
	p.ID = id

	d := dto.FromPrompt(*p)
	return &d, nil
}

type ListPromptsInput struct {
	AIModel      string
	Industry     string
	Topic        string
	TrendingOnly bool
}

// List returns prompts newest first, narrowed by the optional filters
// (additive AND).
func (s *PromptService) List(ctx context.Context, in ListPromptsInput) ([]dto.PromptDTO, error) {
	prompts, err := s.store.List(ctx, repositories.PromptFilter{
		AIModel:      in.AIModel,
		Industry:     in.Industry,
		Topic:        in.Topic,
		TrendingOnly: in.TrendingOnly,
	})
	if err != nil {
		return nil, errs.NewUpstreamError(err)
	}
	out := make([]dto.PromptDTO, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, dto.FromPrompt(p))
	}
	return out, nil
}

// GetByID loads a prompt by its ObjectID hex.
func (s *PromptService) GetByID(ctx context.Context, hexID string) (*dto.PromptDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, errs.NewBadRequestError("invalid prompt id")
	}
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFoundError("prompt")
		}
		return nil, errs.NewUpstreamError(err)
	}
	d := dto.FromPrompt(*p)
	return &d, nil
}

// PromptOfTheDay resolves the featured prompt through a three-tier
// fallback: the explicit flag holder, else the newest trending prompt,
// else the newest prompt of any kind, else not found.
func (s *PromptService) PromptOfTheDay(ctx context.Context) (*dto.PromptDTO, error) {
	lookups := []func(context.Context) (*models.Prompt, error){
		s.store.FindPromptOfDay,
		s.store.FindNewestTrending,
		s.store.FindNewest,
	}
	for _, lookup := range lookups {
		p, err := lookup(ctx)
		if err == nil {
			d := dto.FromPrompt(*p)
			return &d, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewUpstreamError(err)
		}
	}
	return nil, errs.NewNotFoundError("no prompts available")
}

// IncrementCopyCount bumps copy_count by one and returns the new value.
func (s *PromptService) IncrementCopyCount(ctx context.Context, hexID string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid prompt id")
	}
	count, err := s.store.IncrementCopyCount(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, errs.NewNotFoundError("prompt")
		}
		return 0, errs.NewUpstreamError(err)
	}
	return count, nil
}

// Delete hard-deletes a prompt. Collections referencing it keep their
// dangling reference.
func (s *PromptService) Delete(ctx context.Context, hexID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return errs.NewBadRequestError("invalid prompt id")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return errs.NewNotFoundError("prompt")
		}
		return errs.NewUpstreamError(err)
	}
	return nil
}
