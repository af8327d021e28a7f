package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/model"
	"github.com/bralash/rants-api/internal/repository"
)

// tokenName labels every token issued through login or registration.
const tokenName = "auth_token"

// TokenService issues, validates, and revokes opaque bearer tokens.
//
// Plaintext tokens have the form "<id>|<secret>". The secret never touches
// the database; only its SHA-256 hash is stored, so a leaked token table
// cannot be replayed. Tokens carry no expiry: they stay valid until revoked.
type TokenService struct {
	tokens repository.TokenRepository
	users  repository.UserRepository
}

// NewTokenService creates a token service over the given repositories.
func NewTokenService(tokens repository.TokenRepository, users repository.UserRepository) *TokenService {
	return &TokenService{tokens: tokens, users: users}
}

// Issue generates a new token bound to the user and returns its plaintext
// form. The caller decides whether prior tokens survive: login revokes them
// first, registration does not.
func (s *TokenService) Issue(ctx context.Context, user *model.User) (string, error) {
	secret := newSecret()

	token := &model.AccessToken{
		UserID:    user.ID,
		Name:      tokenName,
		TokenHash: hashSecret(secret),
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return "", fmt.Errorf("create access token: %w", err)
	}

	return fmt.Sprintf("%d|%s", token.ID, secret), nil
}

// Validate resolves a plaintext token to its owning user. Any failure
// (malformed token, unknown id, hash mismatch, missing owner) maps to
// ErrUnauthenticated so callers cannot distinguish why a token was rejected.
func (s *TokenService) Validate(ctx context.Context, plaintext string) (*model.User, error) {
	id, secret, ok := splitToken(plaintext)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}

	token, err := s.tokens.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	if subtle.ConstantTimeCompare([]byte(token.TokenHash), []byte(hashSecret(secret))) != 1 {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, token.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	// Best effort; a failed touch must not reject the request.
	_ = s.tokens.TouchLastUsed(ctx, token.ID, time.Now())

	return user, nil
}

// Revoke deletes exactly the token presented, leaving the user's other
// sessions intact.
func (s *TokenService) Revoke(ctx context.Context, plaintext string) error {
	id, secret, ok := splitToken(plaintext)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	token, err := s.tokens.FindByID(ctx, id)
	if err != nil {
		return apperrors.ErrUnauthenticated
	}
	if subtle.ConstantTimeCompare([]byte(token.TokenHash), []byte(hashSecret(secret))) != 1 {
		return apperrors.ErrUnauthenticated
	}

	return s.tokens.DeleteByID(ctx, token.ID)
}

// RevokeAllForUser deletes every token issued to the user.
func (s *TokenService) RevokeAllForUser(ctx context.Context, userID uint) error {
	return s.tokens.DeleteAllForUser(ctx, userID)
}

func newSecret() string {
	// Two UUIDs stripped of dashes give 64 hex characters of entropy.
	return strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
}

func hashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

func splitToken(plaintext string) (id uint, secret string, ok bool) {
	idStr, secret, found := strings.Cut(plaintext, "|")
	if !found || secret == "" {
		return 0, "", false
	}
	parsed, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, "", false
	}
	return uint(parsed), secret, true
}
