package dto

import (
	"time"

	"promptvault/models"
)

// PromptDTO exposes prompt fields to API consumers. id is hex string.
type PromptDTO struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PromptText     string    `json:"prompt_text"`
	NegativePrompt string    `json:"negative_prompt,omitempty"`
	AIModel        string    `json:"ai_model"`
	Industry       string    `json:"industry"`
	Topic          string    `json:"topic"`
	MediaType      string    `json:"media_type"`
	MediaURL       string    `json:"media_url"`
	IsTrending     bool      `json:"is_trending"`
	IsPromptOfDay  bool      `json:"is_prompt_of_day"`
	CopyCount      int64     `json:"copy_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// FromPrompt maps a stored prompt to its public DTO.
func FromPrompt(p models.Prompt) PromptDTO {
	return PromptDTO{
		ID:             p.ID.Hex(),
		Title:          p.Title,
		Description:    p.Description,
		PromptText:     p.PromptText,
		NegativePrompt: p.NegativePrompt,
		AIModel:        p.AIModel,
		Industry:       p.Industry,
		Topic:          p.Topic,
		MediaType:      p.MediaType,
		MediaURL:       p.MediaURL,
		IsTrending:     p.IsTrending,
		IsPromptOfDay:  p.IsPromptOfDay,
		CopyCount:      p.CopyCount,
		CreatedAt:      p.CreatedAt,
	}
}
