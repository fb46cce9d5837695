package services

import (
	"context"

	"github.com/studytrack/backend/internal/db"
	"github.com/studytrack/backend/internal/models"
)

type ContactService struct {
	store db.Store
}

func NewContactService(store db.Store) *ContactService {
	return &ContactService{store: store}
}

func (s *ContactService) CreateMessage(ctx context.Context, msg models.ContactMessage) (string, error) {
	return s.store.InsertOne(ctx, models.ContactCollection, msg)
}
