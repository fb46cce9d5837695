package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogPost struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title    string             `bson:"title" json:"title" validate:"required"`
	Slug     string             `bson:"slug" json:"slug" validate:"required"`
	Excerpt  *string            `bson:"excerpt" json:"excerpt"`
	Content  string             `bson:"content" json:"content" validate:"required"`
	Author   string             `bson:"author" json:"author" validate:"required"`
	Tags     []string           `bson:"tags" json:"tags"`
	CoverURL *string            `bson:"cover_url" json:"cover_url"`
	// Published defaults to true at the schema level but the create path
	// never writes it, so stored documents carry whatever the omitted
	// field reads back as.
	Published bool `bson:"published,omitempty" json:"published,omitempty"`
}
