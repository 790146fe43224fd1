package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media types accepted for prompt attachments.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Prompt represents a shared AI generation example with its media.
// Collection: prompts
//
// At most one document carries is_prompt_of_day=true; the repository
// enforces this with a clear-then-set write sequence.
type Prompt struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	PromptText     string             `bson:"prompt_text" json:"prompt_text"`
	NegativePrompt string             `bson:"negative_prompt,omitempty" json:"negative_prompt,omitempty"`
	AIModel        string             `bson:"ai_model" json:"ai_model"`
	Industry       string             `bson:"industry" json:"industry"`
	Topic          string             `bson:"topic" json:"topic"`
	MediaType      string             `bson:"media_type" json:"media_type"`
	MediaURL       string             `bson:"media_url" json:"media_url"`
	IsTrending     bool               `bson:"is_trending" json:"is_trending"`
	IsPromptOfDay  bool               `bson:"is_prompt_of_day" json:"is_prompt_of_day"`
	CopyCount      int64              `bson:"copy_count" json:"copy_count"`
}
