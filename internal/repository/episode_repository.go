package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bralash/rants-api/internal/model"
)

// EpisodeRepository defines episode persistence operations.
type EpisodeRepository interface {
	Create(ctx context.Context, episode *model.Episode) error
	Update(ctx context.Context, episode *model.Episode) error
	FindByID(ctx context.Context, id uint) (*model.Episode, error)
	FindBySlug(ctx context.Context, slug string) (*model.Episode, error)
	List(ctx context.Context, page, perPage int) ([]model.Episode, int64, error)
	Delete(ctx context.Context, id uint) error
	FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
}

type episodeRepository struct {
	db *gorm.DB
}

// NewEpisodeRepository builds a GORM-backed repository.
func NewEpisodeRepository(db *gorm.DB) EpisodeRepository {
	return &episodeRepository{db: db}
}

func (r *episodeRepository) Create(ctx context.Context, episode *model.Episode) error {
	return r.db.WithContext(ctx).Create(episode).Error
}

func (r *episodeRepository) Update(ctx context.Context, episode *model.Episode) error {
	return r.db.WithContext(ctx).Save(episode).Error
}

func (r *episodeRepository) FindByID(ctx context.Context, id uint) (*model.Episode, error) {
	var episode model.Episode
	if err := r.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		return nil, err
	}
	return &episode, nil
}

func (r *episodeRepository) FindBySlug(ctx context.Context, slug string) (*model.Episode, error) {
	var episode model.Episode
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&episode).Error; err != nil {
		return nil, err
	}
	return &episode, nil
}

func (r *episodeRepository) List(ctx context.Context, page, perPage int) ([]model.Episode, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Episode{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var episodes []model.Episode
	offset := (page - 1) * perPage
	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(perPage).Find(&episodes).Error; err != nil {
		return nil, 0, err
	}
	return episodes, total, nil
}

// Delete removes the episode and any playlist links pointing at it.
func (r *episodeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("episode_id = ?", id).Delete(&model.PlaylistEpisode{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Episode{}, id).Error
	})
}

// FindExistingIDs returns the subset of ids that exist in the episodes table.
func (r *episodeRepository) FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var existing []uint
	if err := r.db.WithContext(ctx).Model(&model.Episode{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
