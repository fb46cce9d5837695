package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/studytrack/backend/internal/db"
	"github.com/studytrack/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const sessionTTL = 7 * 24 * time.Hour

// HashPassword salts and hashes a password, returning the "salt:hash"
// stored form. Single-round SHA-256 is the stored-form contract inherited
// from existing credentials; new deployments should consider a versioned
// stored form before strengthening it.
func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	sum := sha256.Sum256([]byte(saltHex + password))
	return saltHex + ":" + hex.EncodeToString(sum[:]), nil
}

// VerifyPassword compares a plain password with a stored "salt:hash" form.
// Malformed stored forms fail closed.
func VerifyPassword(password, stored string) bool {
	salt, hash, found := strings.Cut(stored, ":")
	if !found {
		return false
	}
	sum := sha256.Sum256([]byte(salt + password))
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(hash)) == 1
}

// generateSessionToken returns a URL-safe token carrying 32 bytes of entropy.
func generateSessionToken() (string, error) {
	token := make([]byte, 32)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(token), nil
}

type AuthService struct {
	store db.Store
}

func NewAuthService(store db.Store) *AuthService {
	return &AuthService{store: store}
}

// RegisterUser creates a new user unless the email is already registered.
func (s *AuthService) RegisterUser(ctx context.Context, name, email, password string) (string, error) {
	var existing models.User
	err := s.store.FindOne(ctx, models.UserCollection, bson.M{"email": email}, &existing)
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, db.ErrNotFound) {
		return "", err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.store.InsertOne(ctx, models.UserCollection, user)
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token     string
	ExpiresAt string
	Name      string
}

// LoginUser verifies credentials and issues a session. Unknown email and
// wrong password return the same error so callers cannot enumerate users.
func (s *AuthService) LoginUser(ctx context.Context, email, password, userAgent, ip string) (LoginResult, error) {
	var user models.User
	if err := s.store.FindOne(ctx, models.UserCollection, bson.M{"email": email}, &user); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := generateSessionToken()
	if err != nil {
		return LoginResult{}, err
	}

	now := time.Now().UTC()
	expiresAt := now.Add(sessionTTL).Format(time.RFC3339)

	session := models.Session{
		UserID:       user.ID.Hex(),
		Token:        token,
		ExpiresAtISO: expiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ip != "" {
		session.IP = &ip
	}

	if _, err := s.store.InsertOne(ctx, models.SessionCollection, session); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, ExpiresAt: expiresAt, Name: user.Name}, nil
}
