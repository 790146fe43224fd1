package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"promptvault/errs"
	"promptvault/models"
	"promptvault/repositories"
	"promptvault/validation"
)

// fakePromptStore is an in-memory PromptStore.
type fakePromptStore struct {
	prompts []models.Prompt
}

func (f *fakePromptStore) Insert(_ context.Context, p *models.Prompt) (primitive.ObjectID, error) {
	p.ID = primitive.NewObjectID()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	f.prompts = append(f.prompts, *p)
	return p.ID, nil
}

func (f *fakePromptStore) List(_ context.Context, fl repositories.PromptFilter) ([]models.Prompt, error) {
	var out []models.Prompt
	for _, p := range f.prompts {
		if fl.AIModel != "" && p.AIModel != fl.AIModel {
			continue
		}
		if fl.Industry != "" && p.Industry != fl.Industry {
			continue
		}
		if fl.Topic != "" && p.Topic != fl.Topic {
			continue
		}
		if fl.TrendingOnly && !p.IsTrending {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePromptStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Prompt, error) {
	for i := range f.prompts {
		if f.prompts[i].ID == id {
			p := f.prompts[i]
			return &p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePromptStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range f.prompts {
		if f.prompts[i].ID == id {
			f.prompts = append(f.prompts[:i], f.prompts[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakePromptStore) IncrementCopyCount(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i := range f.prompts {
		if f.prompts[i].ID == id {
			f.prompts[i].CopyCount++
			return f.prompts[i].CopyCount, nil
		}
	}
	return 0, mongo.ErrNoDocuments
}

func (f *fakePromptStore) ClearPromptOfDay(_ context.Context) error {
	for i := range f.prompts {
		f.prompts[i].IsPromptOfDay = false
	}
	return nil
}

func (f *fakePromptStore) FindPromptOfDay(_ context.Context) (*models.Prompt, error) {
	for i := range f.prompts {
		if f.prompts[i].IsPromptOfDay {
			p := f.prompts[i]
			return &p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePromptStore) FindNewestTrending(_ context.Context) (*models.Prompt, error) {
	return f.newest(func(p models.Prompt) bool { return p.IsTrending })
}

func (f *fakePromptStore) FindNewest(_ context.Context) (*models.Prompt, error) {
	return f.newest(func(models.Prompt) bool { return true })
}

func (f *fakePromptStore) newest(match func(models.Prompt) bool) (*models.Prompt, error) {
	var best *models.Prompt
	for i := range f.prompts {
		p := f.prompts[i]
		if !match(p) {
			continue
		}
		if best == nil || p.CreatedAt.After(best.CreatedAt) {
			best = &p
		}
	}
	if best == nil {
		return nil, mongo.ErrNoDocuments
	}
	return best, nil
}

func seedPrompt(t *testing.T, store *fakePromptStore, p models.Prompt) primitive.ObjectID {
	t.Helper()
	id, err := store.Insert(context.Background(), &p)
	assert.NoError(t, err)
	return id
}

func TestValidateCreatePromptReportsAllMissingFields(t *testing.T) {
	err := ValidateCreatePrompt(validation.Record{
		"title":     "Neon city",
		"mediaType": "image",
	})

	var apiErr *errs.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.ElementsMatch(t,
		[]string{"description", "promptText", "aiModel", "industry", "topic"},
		apiErr.MissingFields,
	)
}

func TestValidateCreatePromptRejectsUnknownMediaType(t *testing.T) {
	err := ValidateCreatePrompt(validation.Record{
		"title": "t", "description": "d", "promptText": "p",
		"aiModel": "m", "industry": "i", "topic": "x",
		"mediaType": "audio",
	})
	assert.True(t, errs.IsValidation(err))
}

func TestCreateClearsExistingPromptOfDay(t *testing.T) {
	store := &fakePromptStore{}
	seedPrompt(t, store, models.Prompt{Title: "A", IsPromptOfDay: true})

	svc := NewPromptService(store)
	created, err := svc.Create(context.Background(), CreatePromptInput{
		Title: "B", Description: "d", PromptText: "p",
		AIModel: "m", Industry: "i", Topic: "x",
		MediaType: "image", MediaURL: "https://cdn/x.png",
		IsPromptOfDay: true,
	})
	assert.NoError(t, err)

	flagged := 0
	for _, p := range store.prompts {
		if p.IsPromptOfDay {
			flagged++
			assert.Equal(t, created.ID, p.ID.Hex())
		}
	}
	assert.Equal(t, 1, flagged)
}

func TestCreateWithoutFlagLeavesHolderAlone(t *testing.T) {
	store := &fakePromptStore{}
	holder := seedPrompt(t, store, models.Prompt{Title: "A", IsPromptOfDay: true})

	svc := NewPromptService(store)
	_, err := svc.Create(context.Background(), CreatePromptInput{
		Title: "B", Description: "d", PromptText: "p",
		AIModel: "m", Industry: "i", Topic: "x",
		MediaType: "image",
	})
	assert.NoError(t, err)

	p, err := store.FindPromptOfDay(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, holder, p.ID)
}

func TestPromptOfTheDayExplicitFlagWins(t *testing.T) {
	store := &fakePromptStore{}
	seedPrompt(t, store, models.Prompt{Title: "trending", IsTrending: true, CreatedAt: time.Now()})
	flagged := seedPrompt(t, store, models.Prompt{
		Title: "flagged", IsPromptOfDay: true, CreatedAt: time.Now().Add(-time.Hour),
	})

	svc := NewPromptService(store)
	got, err := svc.PromptOfTheDay(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, flagged.Hex(), got.ID)
}

func TestPromptOfTheDayFallsBackToNewestTrending(t *testing.T) {
	store := &fakePromptStore{}
	seedPrompt(t, store, models.Prompt{Title: "plain", CreatedAt: time.Now()})
	seedPrompt(t, store, models.Prompt{
		Title: "old trending", IsTrending: true, CreatedAt: time.Now().Add(-2 * time.Hour),
	})
	seedPrompt(t, store, models.Prompt{
		Title: "new trending", IsTrending: true, CreatedAt: time.Now().Add(-time.Hour),
	})

	svc := NewPromptService(store)
	got, err := svc.PromptOfTheDay(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "new trending", got.Title)
	assert.True(t, got.IsTrending)
}

func TestPromptOfTheDayFallsBackToNewestOfAnyKind(t *testing.T) {
	store := &fakePromptStore{}
	seedPrompt(t, store, models.Prompt{Title: "older", CreatedAt: time.Now().Add(-time.Hour)})
	seedPrompt(t, store, models.Prompt{Title: "newest", CreatedAt: time.Now()})

	svc := NewPromptService(store)
	got, err := svc.PromptOfTheDay(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "newest", got.Title)
}

func TestPromptOfTheDayNoneAvailable(t *testing.T) {
	svc := NewPromptService(&fakePromptStore{})
	_, err := svc.PromptOfTheDay(context.Background())
	assert.True(t, errs.IsNotFound(err))
}

func TestIncrementCopyCountIsCumulative(t *testing.T) {
	store := &fakePromptStore{}
	id := seedPrompt(t, store, models.Prompt{Title: "A"})

	svc := NewPromptService(store)
	var last int64
	for i := 0; i < 5; i++ {
		n, err := svc.IncrementCopyCount(context.Background(), id.Hex())
		assert.NoError(t, err)
		last = n
	}
	assert.Equal(t, int64(5), last)
}

func TestGetByIDRejectsMalformedHex(t *testing.T) {
	svc := NewPromptService(&fakePromptStore{})
	_, err := svc.GetByID(context.Background(), "not-a-hex")
	assert.Equal(t, 400, errs.StatusOf(err))
}

func TestListFiltersAreAdditive(t *testing.T) {
	store := &fakePromptStore{}
	seedPrompt(t, store, models.Prompt{Title: "a", AIModel: "midjourney", Industry: "retail", IsTrending: true})
	seedPrompt(t, store, models.Prompt{Title: "b", AIModel: "midjourney", Industry: "finance", IsTrending: true})
	seedPrompt(t, store, models.Prompt{Title: "c", AIModel: "dalle", Industry: "retail"})

	svc := NewPromptService(store)
	out, err := svc.List(context.Background(), ListPromptsInput{
		AIModel: "midjourney", Industry: "retail", TrendingOnly: true,
	})
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Title)
}

func TestDeleteUnknownPromptIsNotFound(t *testing.T) {
	svc := NewPromptService(&fakePromptStore{})
	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, errs.IsNotFound(err))
}
