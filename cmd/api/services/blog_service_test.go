package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"promptvault/errs"
	"promptvault/models"
	"promptvault/validation"
)

// fakeBlogStore is an in-memory BlogStore.
type fakeBlogStore struct {
	blogs []models.Blog
}

func (f *fakeBlogStore) Insert(_ context.Context, b *models.Blog) error {
	b.ID = primitive.NewObjectID()
	f.blogs = append(f.blogs, *b)
	return nil
}

func (f *fakeBlogStore) List(_ context.Context, publishedOnly bool) ([]models.Blog, error) {
	var out []models.Blog
	for _, b := range f.blogs {
		if publishedOnly && !b.IsPublished {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBlogStore) GetBySlugAndIncrementViews(_ context.Context, slug string) (*models.Blog, error) {
	for i := range f.blogs {
		if f.blogs[i].Slug == slug {
			f.blogs[i].Views++
			b := f.blogs[i]
			return &b, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBlogStore) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, b := range f.blogs {
		if b.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBlogStore) DeleteBySlug(_ context.Context, slug string) error {
	for i := range f.blogs {
		if f.blogs[i].Slug == slug {
			f.blogs = append(f.blogs[:i], f.blogs[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func TestValidateCreateBlogReportsAllMissingFields(t *testing.T) {
	err := ValidateCreateBlog(validation.Record{"title": "Hello"})

	var apiErr *errs.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.ElementsMatch(t, []string{"excerpt", "content", "category"}, apiErr.MissingFields)
}

func TestBlogCreateDerivesSlugFromTitle(t *testing.T) {
	svc := NewBlogService(&fakeBlogStore{})
	b, err := svc.Create(context.Background(), CreateBlogInput{
		Title: "My Cool, Prompt!", Excerpt: "e", Content: "c", Category: "news",
		CoverImage: "https://cdn/x.png",
	})
	assert.NoError(t, err)
	assert.Equal(t, "my-cool-prompt", b.Slug)
}

func TestBlogCreateSuffixesSlugOnCollision(t *testing.T) {
	store := &fakeBlogStore{}
	svc := NewBlogService(store)

	first, err := svc.Create(context.Background(), CreateBlogInput{
		Title: "Weekly Roundup", Excerpt: "e", Content: "c", Category: "news",
	})
	assert.NoError(t, err)

	second, err := svc.Create(context.Background(), CreateBlogInput{
		Title: "Weekly Roundup", Excerpt: "e", Content: "c", Category: "news",
	})
	assert.NoError(t, err)

	assert.NotEqual(t, first.Slug, second.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "weekly-roundup-"))
}

func TestBlogCreateDefaultsAuthor(t *testing.T) {
	svc := NewBlogService(&fakeBlogStore{})
	b, err := svc.Create(context.Background(), CreateBlogInput{
		Title: "t-1", Excerpt: "e", Content: "c", Category: "news",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.DefaultBlogAuthor, b.Author)
}

func TestBlogViewsIncrementOncePerDetailFetch(t *testing.T) {
	store := &fakeBlogStore{}
	svc := NewBlogService(store)
	created, err := svc.Create(context.Background(), CreateBlogInput{
		Title: "Counted", Excerpt: "e", Content: "c", Category: "news",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), created.Views)

	first, err := svc.GetBySlug(context.Background(), created.Slug)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), first.Views)

	second, err := svc.GetBySlug(context.Background(), created.Slug)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), second.Views)
}

func TestBlogListOmitsContentBody(t *testing.T) {
	store := &fakeBlogStore{}
	svc := NewBlogService(store)
	_, err := svc.Create(context.Background(), CreateBlogInput{
		Title: "t-2", Excerpt: "e", Content: "long body", Category: "news",
	})
	assert.NoError(t, err)

	out, err := svc.List(context.Background(), false)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Empty(t, out[0].Content)
}

func TestBlogListPublishedOnly(t *testing.T) {
	store := &fakeBlogStore{}
	svc := NewBlogService(store)
	_, err := svc.Create(context.Background(), CreateBlogInput{
		Title: "draft", Excerpt: "e", Content: "c", Category: "news",
	})
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateBlogInput{
		Title: "live", Excerpt: "e", Content: "c", Category: "news", IsPublished: true,
	})
	assert.NoError(t, err)

	out, err := svc.List(context.Background(), true)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "live", out[0].Title)
}

func TestBlogGetUnknownSlugIsNotFound(t *testing.T) {
	svc := NewBlogService(&fakeBlogStore{})
	_, err := svc.GetBySlug(context.Background(), "missing")
	assert.True(t, errs.IsNotFound(err))
}

func TestSplitTagsTrimsAndDropsEmpties(t *testing.T) {
	assert.Equal(t, []string{"ai", "art", "design"}, SplitTags(" ai, art ,, design "))
	assert.Empty(t, SplitTags("  ,  "))
}
