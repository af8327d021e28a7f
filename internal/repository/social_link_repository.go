package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bralash/rants-api/internal/model"
)

// SocialLinkRepository defines social-media-link persistence operations.
type SocialLinkRepository interface {
	Create(ctx context.Context, link *model.SocialMediaLink) error
	Update(ctx context.Context, link *model.SocialMediaLink) error
	FindByID(ctx context.Context, id uint) (*model.SocialMediaLink, error)
	List(ctx context.Context, page, perPage int) ([]model.SocialMediaLink, int64, error)
	Delete(ctx context.Context, id uint) error
}

type socialLinkRepository struct {
	db *gorm.DB
}

// NewSocialLinkRepository builds a GORM-backed repository.
func NewSocialLinkRepository(db *gorm.DB) SocialLinkRepository {
	return &socialLinkRepository{db: db}
}

func (r *socialLinkRepository) Create(ctx context.Context, link *model.SocialMediaLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *socialLinkRepository) Update(ctx context.Context, link *model.SocialMediaLink) error {
	return r.db.WithContext(ctx).Omit("TeamMember").Save(link).Error
}

func (r *socialLinkRepository) FindByID(ctx context.Context, id uint) (*model.SocialMediaLink, error) {
	var link model.SocialMediaLink
	if err := r.db.WithContext(ctx).Preload("TeamMember").First(&link, id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *socialLinkRepository) List(ctx context.Context, page, perPage int) ([]model.SocialMediaLink, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.SocialMediaLink{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var links []model.SocialMediaLink
	offset := (page - 1) * perPage
	if err := r.db.WithContext(ctx).Preload("TeamMember").
		Order("id").Offset(offset).Limit(perPage).
		Find(&links).Error; err != nil {
		return nil, 0, err
	}
	return links, total, nil
}

func (r *socialLinkRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SocialMediaLink{}, id).Error
}
