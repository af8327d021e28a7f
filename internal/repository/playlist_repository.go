package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bralash/rants-api/internal/model"
)

// PlaylistRepository defines playlist persistence operations, including the
// playlist-episode join rows.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *model.Playlist) error
	Update(ctx context.Context, playlist *model.Playlist) error
	FindByID(ctx context.Context, id uint) (*model.Playlist, error)
	FindByIDWithEpisodes(ctx context.Context, id uint) (*model.Playlist, error)
	List(ctx context.Context, page, perPage int) ([]model.Playlist, int64, error)
	Delete(ctx context.Context, id uint) error

	LinkedEpisodeIDs(ctx context.Context, playlistID uint) ([]uint, error)
	AddLinks(ctx context.Context, playlistID uint, episodeIDs []uint) error
	RemoveLinks(ctx context.Context, playlistID uint, episodeIDs []uint) error

	// WithTransaction runs fn against a repository bound to a transaction so
	// multi-step link updates commit or roll back as one unit.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo PlaylistRepository) error) error
}

type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository builds a GORM-backed repository.
func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	return r.db.WithContext(ctx).Omit("Episodes").Create(playlist).Error
}

func (r *playlistRepository) Update(ctx context.Context, playlist *model.Playlist) error {
	return r.db.WithContext(ctx).Omit("Episodes").Save(playlist).Error
}

func (r *playlistRepository) FindByID(ctx context.Context, id uint) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := r.db.WithContext(ctx).First(&playlist, id).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) FindByIDWithEpisodes(ctx context.Context, id uint) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := r.db.WithContext(ctx).Preload("Episodes").First(&playlist, id).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) List(ctx context.Context, page, perPage int) ([]model.Playlist, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Playlist{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var playlists []model.Playlist
	offset := (page - 1) * perPage
	if err := r.db.WithContext(ctx).Preload("Episodes").
		Order("id").Offset(offset).Limit(perPage).
		Find(&playlists).Error; err != nil {
		return nil, 0, err
	}
	return playlists, total, nil
}

// Delete removes the playlist and its join rows so no orphaned links remain.
func (r *playlistRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistEpisode{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Playlist{}, id).Error
	})
}

func (r *playlistRepository) LinkedEpisodeIDs(ctx context.Context, playlistID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&model.PlaylistEpisode{}).
		Where("playlist_id = ?", playlistID).
		Pluck("episode_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *playlistRepository) AddLinks(ctx context.Context, playlistID uint, episodeIDs []uint) error {
	if len(episodeIDs) == 0 {
		return nil
	}
	links := make([]model.PlaylistEpisode, 0, len(episodeIDs))
	for _, id := range episodeIDs {
		links = append(links, model.PlaylistEpisode{PlaylistID: playlistID, EpisodeID: id})
	}
	return r.db.WithContext(ctx).Create(&links).Error
}

func (r *playlistRepository) RemoveLinks(ctx context.Context, playlistID uint, episodeIDs []uint) error {
	if len(episodeIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("playlist_id = ? AND episode_id IN ?", playlistID, episodeIDs).
		Delete(&model.PlaylistEpisode{}).Error
}

func (r *playlistRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo PlaylistRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &playlistRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
