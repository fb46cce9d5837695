package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is created at login. UserID is a copied string, not a
// database-enforced reference, and nothing deletes expired sessions.
type Session struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       string             `bson:"user_id" json:"user_id"`
	Token        string             `bson:"token" json:"-"`
	UserAgent    *string            `bson:"user_agent" json:"user_agent"`
	IP           *string            `bson:"ip" json:"ip"`
	ExpiresAtISO string             `bson:"expires_at_iso" json:"expires_at_iso"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
