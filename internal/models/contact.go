package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name" validate:"required"`
	Email   string             `bson:"email" json:"email" validate:"required,email"`
	Subject string             `bson:"subject" json:"subject" validate:"required"`
	Message string             `bson:"message" json:"message" validate:"required"`
}
