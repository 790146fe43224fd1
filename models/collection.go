package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection groups prompts under a curated theme.
// Collection: collections
//
// Prompts holds non-owning references; deleting a Prompt does not
// touch the collections that list it.
type Collection struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
	Title       string               `bson:"title" json:"title"`
	Slug        string               `bson:"slug" json:"slug"`
	Description string               `bson:"description" json:"description"`
	CoverImage  string               `bson:"cover_image" json:"cover_image"`
	Prompts     []primitive.ObjectID `bson:"prompts" json:"prompts"`
	Category    string               `bson:"category" json:"category"`
	IsPublished bool                 `bson:"is_published" json:"is_published"`
	Views       int64                `bson:"views" json:"views"`
	Downloads   int64                `bson:"downloads" json:"downloads"`
}
