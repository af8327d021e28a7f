package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bralash/rants-api/internal/auth"
	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/model"
	"github.com/bralash/rants-api/internal/repository"
)

const bcryptCost = 10

// TokenIssuer is the slice of the token service the auth service needs.
type TokenIssuer interface {
	Issue(ctx context.Context, user *model.User) (string, error)
	Revoke(ctx context.Context, plaintext string) error
	RevokeAllForUser(ctx context.Context, userID uint) error
}

var _ TokenIssuer = (*auth.TokenService)(nil)

// AuthService handles registration, login, and logout.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users  repository.UserRepository
	tokens TokenIssuer
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens TokenIssuer) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Register creates a user with a hashed password and issues their first
// token. Registration never revokes anything; there is nothing to revoke yet.
func (s *authService) Register(ctx context.Context, name, email, password string, role model.Role) (*model.User, string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.NewValidationError(apperrors.ErrEmailTaken.Error(), map[string]string{
			"email": "the email has already been taken",
		})
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a user, revokes every previously issued token, and
// issues a fresh one. One login means one active session.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := s.tokens.RevokeAllForUser(ctx, user.ID); err != nil {
		return nil, "", fmt.Errorf("revoke prior tokens: %w", err)
	}

	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes only the token presented; other sessions for the same user
// stay valid. The asymmetry with Login is deliberate and kept as observed.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}
