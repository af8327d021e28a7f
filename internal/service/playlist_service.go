package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/model"
	"github.com/bralash/rants-api/internal/repository"
)

// PlaylistUpdate carries a partial field update; nil fields are untouched.
// EpisodeIDs, when non-nil, requests a full replace of the linked set.
type PlaylistUpdate struct {
	Name        *string
	Description *string
	EpisodeIDs  *[]uint
}

// PlaylistService manages playlists and their many-to-many episode links.
type PlaylistService interface {
	List(ctx context.Context, page, perPage int) ([]model.Playlist, int64, error)
	Get(ctx context.Context, id uint) (*model.Playlist, error)
	Create(ctx context.Context, name, description string, episodeIDs []uint) (*model.Playlist, error)
	Update(ctx context.Context, id uint, update PlaylistUpdate) (*model.Playlist, error)
	AddEpisodes(ctx context.Context, id uint, episodeIDs []uint) (*model.Playlist, error)
	RemoveEpisode(ctx context.Context, id, episodeID uint) error
	Delete(ctx context.Context, id uint) error
}

type playlistService struct {
	playlists repository.PlaylistRepository
	episodes  repository.EpisodeRepository
}

// NewPlaylistService creates a new playlist service.
func NewPlaylistService(playlists repository.PlaylistRepository, episodes repository.EpisodeRepository) PlaylistService {
	return &playlistService{playlists: playlists, episodes: episodes}
}

func (s *playlistService) List(ctx context.Context, page, perPage int) ([]model.Playlist, int64, error) {
	return s.playlists.List(ctx, page, perPage)
}

func (s *playlistService) Get(ctx context.Context, id uint) (*model.Playlist, error) {
	playlist, err := s.playlists.FindByIDWithEpisodes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return playlist, nil
}

// Create persists the playlist and attaches the given episodes in one
// transaction. The playlist is new, so attach and replace are the same thing.
func (s *playlistService) Create(ctx context.Context, name, description string, episodeIDs []uint) (*model.Playlist, error) {
	episodeIDs = dedupe(episodeIDs)
	if err := s.validateEpisodeIDs(ctx, episodeIDs); err != nil {
		return nil, err
	}

	playlist := &model.Playlist{Name: name, Description: description}
	err := s.playlists.WithTransaction(ctx, func(ctx context.Context, repo repository.PlaylistRepository) error {
		if err := repo.Create(ctx, playlist); err != nil {
			return fmt.Errorf("create playlist: %w", err)
		}
		return repo.AddLinks(ctx, playlist.ID, episodeIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, playlist.ID)
}

// Update applies a partial field update. When EpisodeIDs is present the
// linked set is fully replaced: links absent from the new set are removed,
// missing ones added, and unchanged pairs are left alone so their join-row
// timestamps do not churn.
func (s *playlistService) Update(ctx context.Context, id uint, update PlaylistUpdate) (*model.Playlist, error) {
	playlist, err := s.playlists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		playlist.Name = *update.Name
	}
	if update.Description != nil {
		playlist.Description = *update.Description
	}

	var wanted []uint
	if update.EpisodeIDs != nil {
		wanted = dedupe(*update.EpisodeIDs)
		if err := s.validateEpisodeIDs(ctx, wanted); err != nil {
			return nil, err
		}
	}

	err = s.playlists.WithTransaction(ctx, func(ctx context.Context, repo repository.PlaylistRepository) error {
		if err := repo.Update(ctx, playlist); err != nil {
			return fmt.Errorf("update playlist: %w", err)
		}
		if update.EpisodeIDs == nil {
			return nil
		}

		current, err := repo.LinkedEpisodeIDs(ctx, playlist.ID)
		if err != nil {
			return err
		}
		toAdd, toRemove := diffIDs(current, wanted)
		if err := repo.RemoveLinks(ctx, playlist.ID, toRemove); err != nil {
			return err
		}
		return repo.AddLinks(ctx, playlist.ID, toAdd)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, playlist.ID)
}

// AddEpisodes performs an idempotent union: already-linked episodes are left
// untouched and the call succeeds even if every id is already present.
func (s *playlistService) AddEpisodes(ctx context.Context, id uint, episodeIDs []uint) (*model.Playlist, error) {
	if _, err := s.playlists.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	episodeIDs = dedupe(episodeIDs)
	if err := s.validateEpisodeIDs(ctx, episodeIDs); err != nil {
		return nil, err
	}

	err := s.playlists.WithTransaction(ctx, func(ctx context.Context, repo repository.PlaylistRepository) error {
		current, err := repo.LinkedEpisodeIDs(ctx, id)
		if err != nil {
			return err
		}
		toAdd, _ := diffIDs(current, episodeIDs)
		return repo.AddLinks(ctx, id, toAdd)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// RemoveEpisode detaches a single episode; removing an absent link is a no-op.
func (s *playlistService) RemoveEpisode(ctx context.Context, id, episodeID uint) error {
	if _, err := s.playlists.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.playlists.RemoveLinks(ctx, id, []uint{episodeID})
}

// Delete removes the playlist; its join rows go with it.
func (s *playlistService) Delete(ctx context.Context, id uint) error {
	if _, err := s.playlists.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.playlists.Delete(ctx, id)
}

// validateEpisodeIDs rejects the whole list when any id does not exist, so
// no partial attachment can happen.
func (s *playlistService) validateEpisodeIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	existing, err := s.episodes.FindExistingIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("validate episode ids: %w", err)
	}

	known := make(map[uint]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, fmt.Sprintf("%d", id))
		}
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError(
			fmt.Sprintf("unknown episode ids: %s", strings.Join(missing, ", ")),
			map[string]string{"episodes": "all episode ids must exist"},
		)
	}
	return nil
}

// diffIDs returns wanted−current as toAdd and current−wanted as toRemove.
func diffIDs(current, wanted []uint) (toAdd, toRemove []uint) {
	currentSet := make(map[uint]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	wantedSet := make(map[uint]struct{}, len(wanted))
	for _, id := range wanted {
		wantedSet[id] = struct{}{}
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range current {
		if _, ok := wantedSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
