package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/bralash/rants-api/internal/model"
)

// TokenRepository defines access-token persistence operations.
type TokenRepository interface {
	Create(ctx context.Context, token *model.AccessToken) error
	FindByID(ctx context.Context, id uint) (*model.AccessToken, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteAllForUser(ctx context.Context, userID uint) error
	TouchLastUsed(ctx context.Context, id uint, at time.Time) error
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository builds a GORM-backed repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *model.AccessToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) FindByID(ctx context.Context, id uint) (*model.AccessToken, error) {
	var token model.AccessToken
	if err := r.db.WithContext(ctx).First(&token, id).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.AccessToken{}, id).Error
}

func (r *tokenRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.AccessToken{}).Error
}

func (r *tokenRepository) TouchLastUsed(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.AccessToken{}).
		Where("id = ?", id).
		Update("last_used_at", at).Error
}
