package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names, one per entity.
const (
	UserCollection    = "studentuser"
	SessionCollection = "session"
	BlogCollection    = "blogpost"
	ContactCollection = "contactmessage"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	AvatarURL    *string            `bson:"avatar_url" json:"avatar_url"`
	School       *string            `bson:"school" json:"school"`
	Major        *string            `bson:"major" json:"major"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
