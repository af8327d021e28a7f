package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bralash/rants-api/internal/model"
)

// ConfessionRepository defines confession persistence operations.
type ConfessionRepository interface {
	Create(ctx context.Context, confession *model.Confession) error
	Update(ctx context.Context, confession *model.Confession) error
	FindByID(ctx context.Context, id uint) (*model.Confession, error)
	// List paginates confessions; approved filters by approval state when non-nil.
	List(ctx context.Context, page, perPage int, approved *bool) ([]model.Confession, int64, error)
	Delete(ctx context.Context, id uint) error
}

type confessionRepository struct {
	db *gorm.DB
}

// NewConfessionRepository builds a GORM-backed repository.
func NewConfessionRepository(db *gorm.DB) ConfessionRepository {
	return &confessionRepository{db: db}
}

func (r *confessionRepository) Create(ctx context.Context, confession *model.Confession) error {
	return r.db.WithContext(ctx).Create(confession).Error
}

func (r *confessionRepository) Update(ctx context.Context, confession *model.Confession) error {
	return r.db.WithContext(ctx).Save(confession).Error
}

func (r *confessionRepository) FindByID(ctx context.Context, id uint) (*model.Confession, error) {
	var confession model.Confession
	if err := r.db.WithContext(ctx).First(&confession, id).Error; err != nil {
		return nil, err
	}
	return &confession, nil
}

func (r *confessionRepository) List(ctx context.Context, page, perPage int, approved *bool) ([]model.Confession, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Confession{})
	if approved != nil {
		query = query.Where("is_approved = ?", *approved)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var confessions []model.Confession
	offset := (page - 1) * perPage
	if err := query.Order("id").Offset(offset).Limit(perPage).Find(&confessions).Error; err != nil {
		return nil, 0, err
	}
	return confessions, total, nil
}

func (r *confessionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Confession{}, id).Error
}
