package services

import (
	"context"

	"github.com/studytrack/backend/internal/db"
	"github.com/studytrack/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultBlogLimit = 10

type BlogService struct {
	store db.Store
}

func NewBlogService(store db.Store) *BlogService {
	return &BlogService{store: store}
}

// ListPosts returns up to limit posts in insertion order, with the internal
// store identifier rewritten to a string "id" field.
func (s *BlogService) ListPosts(ctx context.Context, limit int64) ([]bson.M, error) {
	if limit <= 0 {
		limit = DefaultBlogLimit
	}

	posts, err := s.store.FetchMany(ctx, models.BlogCollection, bson.M{}, limit)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if oid, ok := post["_id"].(primitive.ObjectID); ok {
			post["id"] = oid.Hex()
		} else {
			post["id"] = ""
		}
		delete(post, "_id")
	}
	if posts == nil {
		posts = []bson.M{}
	}
	return posts, nil
}

// CreatePost inserts a new post. The published flag is deliberately left
// unset here; see the BlogPost model.
func (s *BlogService) CreatePost(ctx context.Context, post models.BlogPost) (string, error) {
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return s.store.InsertOne(ctx, models.BlogCollection, post)
}
