package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestMemoryStoreInsertionOrderAndLimit(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.InsertOne(ctx, "blogpost", bson.M{"title": fmt.Sprintf("post-%d", i)}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	docs, err := store.FetchMany(ctx, "blogpost", bson.M{}, 3)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	for i, doc := range docs {
		if doc["title"] != fmt.Sprintf("post-%d", i) {
			t.Errorf("document %d out of insertion order: %v", i, doc["title"])
		}
	}
}

func TestMemoryStoreFindOne(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.InsertOne(ctx, "studentuser", bson.M{"email": "a@x.com", "name": "Ann"})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}

	var doc bson.M
	if err := store.FindOne(ctx, "studentuser", bson.M{"email": "a@x.com"}, &doc); err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if doc["name"] != "Ann" {
		t.Errorf("expected name Ann, got %v", doc["name"])
	}

	err = store.FindOne(ctx, "studentuser", bson.M{"email": "nobody@x.com"}, &doc)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreListCollectionNames(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.InsertOne(ctx, "session", bson.M{"token": "x"})
	store.InsertOne(ctx, "blogpost", bson.M{"title": "t"})

	names, err := store.ListCollectionNames(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(names) != 2 || names[0] != "blogpost" || names[1] != "session" {
		t.Errorf("unexpected collection names: %v", names)
	}
}
