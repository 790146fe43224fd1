package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultBlogAuthor is used when a create request leaves author blank.
const DefaultBlogAuthor = "Admin"

// Blog represents an editorial post
// Collection: blogs
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Content     string             `bson:"content" json:"content"`
	CoverImage  string             `bson:"cover_image" json:"cover_image"`
	Author      string             `bson:"author" json:"author"`
	Category    string             `bson:"category" json:"category"`
	Tags        []string           `bson:"tags" json:"tags"`
	IsPublished bool               `bson:"is_published" json:"is_published"`
	Views       int64              `bson:"views" json:"views"`
}
