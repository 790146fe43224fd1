package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"promptvault/cmd/api/dto"
	"promptvault/errs"
	"promptvault/models"
	"promptvault/slugs"
	"promptvault/validation"
)

// BlogStore is the persistence surface the blog service needs.
type BlogStore interface {
	Insert(ctx context.Context, b *models.Blog) error
	List(ctx context.Context, publishedOnly bool) ([]models.Blog, error)
	GetBySlugAndIncrementViews(ctx context.Context, slug string) (*models.Blog, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

// BlogService encapsulates business logic for blogs and DTO mapping.
type BlogService struct {
	store BlogStore
}

func NewBlogService(store BlogStore) *BlogService {
	return &BlogService{store: store}
}

var blogRequiredFields = []string{"title", "excerpt", "content", "category"}

// ValidateCreateBlog runs the pure field checks for a blog create
// request.
func ValidateCreateBlog(rec validation.Record) error {
	if missing := validation.MissingFields(rec, blogRequiredFields); len(missing) > 0 {
		return errs.NewValidationError(missing)
	}
	return nil
}

// CreateBlogInput carries validated blog fields plus the uploaded
// cover URL. Slug is optional; it is derived from the title when blank.
type CreateBlogInput struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	CoverImage  string
	Author      string
	Category    string
	Tags        []string
	IsPublished bool
}

// Create persists a new blog, deriving the slug from the title when
// absent and suffixing a timestamp on collision. The pre-check is
// best-effort; the unique index backstops concurrent creates.
func (s *BlogService) Create(ctx context.Context, in CreateBlogInput) (*dto.BlogDTO, error) {
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = slugs.FromTitle(in.Title)
	}
	exists, err := s.store.SlugExists(ctx, slug)
	if err != nil {
		return nil, errs.NewUpstreamError(err)
	}
	if exists {
		slug = slugs.WithTimestamp(slug)
	}

	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = models.DefaultBlogAuthor
	}

	b := &models.Blog{
		Title:       strings.TrimSpace(in.Title),
		Slug:        slug,
		Excerpt:     strings.TrimSpace(in.Excerpt),
		Content:     in.Content,
		CoverImage:  in.CoverImage,
		Author:      author,
		Category:    strings.TrimSpace(in.Category),
		Tags:        in.Tags,
		IsPublished: in.IsPublished,
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}

	if err := s.store.Insert(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.NewConflictError("blog slug already exists")
		}
		return nil, errs.NewUpstreamError(err)
	}

	d := dto.FromBlog(*b)
	return &d, nil
}

// List returns blogs newest first. publishedOnly narrows to published
// documents; list items omit the full content body.
func (s *BlogService) List(ctx context.Context, publishedOnly bool) ([]dto.BlogDTO, error) {
	blogs, err := s.store.List(ctx, publishedOnly)
	if err != nil {
		return nil, errs.NewUpstreamError(err)
	}
	out := make([]dto.BlogDTO, 0, len(blogs))
	for _, b := range blogs {
		d := dto.FromBlog(b)
		d.Content = ""
		out = append(out, d)
	}
	return out, nil
}

// GetBySlug returns a blog and increments its views counter as a side
// effect of the read.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*dto.BlogDTO, error) {
	b, err := s.store.GetBySlugAndIncrementViews(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFoundError("blog")
		}
		return nil, errs.NewUpstreamError(err)
	}
	d := dto.FromBlog(*b)
	return &d, nil
}

// Delete hard-deletes a blog by slug.
func (s *BlogService) Delete(ctx context.Context, slug string) error {
	if err := s.store.DeleteBySlug(ctx, slug); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return errs.NewNotFoundError("blog")
		}
		return errs.NewUpstreamError(err)
	}
	return nil
}

// SplitTags turns a comma-separated form value into trimmed tags,
// dropping empties while preserving order.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
