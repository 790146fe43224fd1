package dto

import (
	"time"

	"promptvault/models"
)

// BlogDTO exposes blog fields to API consumers. id is hex string.
type BlogDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content,omitempty"`
	CoverImage  string    `json:"cover_image"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	IsPublished bool      `json:"is_published"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromBlog maps a stored blog to its public DTO. List responses omit
// Content by clearing it at the call site.
func FromBlog(b models.Blog) BlogDTO {
	return BlogDTO{
		ID:          b.ID.Hex(),
		Title:       b.Title,
		Slug:        b.Slug,
		Excerpt:     b.Excerpt,
		Content:     b.Content,
		CoverImage:  b.CoverImage,
		Author:      b.Author,
		Category:    b.Category,
		Tags:        b.Tags,
		IsPublished: b.IsPublished,
		Views:       b.Views,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
