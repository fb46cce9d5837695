package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/studytrack/backend/internal/db"
	"github.com/studytrack/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	salt, _, found := strings.Cut(hashed, ":")
	if !found {
		t.Fatalf("stored form %q has no separator", hashed)
	}
	if len(salt) != 32 {
		t.Errorf("expected 32 hex chars of salt, got %d", len(salt))
	}

	if !VerifyPassword("pw1", hashed) {
		t.Error("password should verify against its own hash")
	}
	if VerifyPassword("pw2", hashed) {
		t.Error("wrong password should not verify")
	}

	// Salts must differ between calls
	other, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hashed == other {
		t.Error("two hashes of the same password should not be identical")
	}
}

func TestVerifyPasswordMalformed(t *testing.T) {
	for _, stored := range []string{"", "noseparator", "deadbeef"} {
		if VerifyPassword("pw1", stored) {
			t.Errorf("malformed stored form %q should fail closed", stored)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := db.NewMemoryStore()
	auth := NewAuthService(store)
	ctx := context.Background()

	userID, err := auth.RegisterUser(ctx, "Ann", "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if userID == "" {
		t.Fatal("expected non-empty user id")
	}

	_, err = auth.RegisterUser(ctx, "Ann Again", "a@x.com", "pw2")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginIssuesSession(t *testing.T) {
	store := db.NewMemoryStore()
	auth := NewAuthService(store)
	ctx := context.Background()

	if _, err := auth.RegisterUser(ctx, "Ann", "a@x.com", "pw1"); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	result, err := auth.LoginUser(ctx, "a@x.com", "pw1", "go-test", "127.0.0.1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if len(result.Token) < 43 {
		t.Errorf("expected at least 43 token chars, got %d", len(result.Token))
	}
	if result.Name != "Ann" {
		t.Errorf("expected name Ann, got %q", result.Name)
	}

	expires, err := time.Parse(time.RFC3339, result.ExpiresAt)
	if err != nil {
		t.Fatalf("expires_at is not RFC3339: %v", err)
	}
	if until := time.Until(expires); until < 6*24*time.Hour || until > 8*24*time.Hour {
		t.Errorf("expected expiry roughly 7 days out, got %v", until)
	}

	// Session record should be persisted with the issued token
	var session models.Session
	if err := store.FindOne(ctx, models.SessionCollection, bson.M{"token": result.Token}, &session); err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
	if session.UserID == "" {
		t.Error("session should carry the user id")
	}
	if session.UserAgent == nil || *session.UserAgent != "go-test" {
		t.Error("session should record the user agent")
	}
}

func TestLoginErrorsAreEnumerationSafe(t *testing.T) {
	store := db.NewMemoryStore()
	auth := NewAuthService(store)
	ctx := context.Background()

	if _, err := auth.RegisterUser(ctx, "Ann", "a@x.com", "pw1"); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	_, wrongPassErr := auth.LoginUser(ctx, "a@x.com", "wrong", "", "")
	_, noUserErr := auth.LoginUser(ctx, "missing@x.com", "pw1", "", "")

	if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
	if !errors.Is(noUserErr, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", noUserErr)
	}
}
