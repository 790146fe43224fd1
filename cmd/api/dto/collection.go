package dto

import (
	"time"

	"promptvault/models"
)

// CollectionDTO exposes collection fields to API consumers. The list
// endpoint carries prompt ids only; the detail endpoint resolves them
// into full PromptDTOs.
type CollectionDTO struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	CoverImage  string      `json:"cover_image"`
	PromptIDs   []string    `json:"prompt_ids"`
	Prompts     []PromptDTO `json:"prompts,omitempty"`
	Category    string      `json:"category"`
	IsPublished bool        `json:"is_published"`
	Views       int64       `json:"views"`
	Downloads   int64       `json:"downloads"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// FromCollection maps a stored collection to its public DTO without
// resolving prompt references.
func FromCollection(c models.Collection) CollectionDTO {
	ids := make([]string, 0, len(c.Prompts))
	for _, id := range c.Prompts {
		ids = append(ids, id.Hex())
	}
	return CollectionDTO{
		ID:          c.ID.Hex(),
		Title:       c.Title,
		Slug:        c.Slug,
		Description: c.Description,
		CoverImage:  c.CoverImage,
		PromptIDs:   ids,
		Category:    c.Category,
		IsPublished: c.IsPublished,
		Views:       c.Views,
		Downloads:   c.Downloads,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
