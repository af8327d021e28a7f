package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bralash/rants-api/internal/cache"
	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/model"
	"github.com/bralash/rants-api/internal/repository"
)

const episodeCacheTTL = 5 * time.Minute

// EpisodeInput carries validated episode fields for create and update.
// Pointer fields distinguish "absent" from zero values on partial updates.
type EpisodeInput struct {
	Title            *string
	Description      *string
	ImgURL           *string
	AudioURL         *string
	Duration         *string
	PostedOn         *string
	Season           *int
	Episode          *int
	SpotifyURL       *string
	ApplePodcastsURL *string
	Archive          *bool
	Featured         *bool
	Slug             *string
}

// EpisodeService exposes episode CRUD operations.
type EpisodeService interface {
	List(ctx context.Context, page, perPage int) ([]model.Episode, int64, error)
	Get(ctx context.Context, id uint) (*model.Episode, error)
	Create(ctx context.Context, input EpisodeInput) (*model.Episode, error)
	Update(ctx context.Context, id uint, input EpisodeInput) (*model.Episode, error)
	Delete(ctx context.Context, id uint) error
}

type episodeService struct {
	repo  repository.EpisodeRepository
	cache *cache.Client
}

// NewEpisodeService builds an EpisodeService with repository and cache.
func NewEpisodeService(repo repository.EpisodeRepository, cache *cache.Client) EpisodeService {
	return &episodeService{repo: repo, cache: cache}
}

func (s *episodeService) cacheKey(id uint) string {
	return fmt.Sprintf("episode:%d", id)
}

func (s *episodeService) List(ctx context.Context, page, perPage int) ([]model.Episode, int64, error) {
	return s.repo.List(ctx, page, perPage)
}

func (s *episodeService) Get(ctx context.Context, id uint) (*model.Episode, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Episode
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	episode, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(episode); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, episodeCacheTTL)
	}
	return episode, nil
}

func (s *episodeService) Create(ctx context.Context, input EpisodeInput) (*model.Episode, error) {
	if input.Slug != nil {
		if err := s.checkSlugFree(ctx, *input.Slug, 0); err != nil {
			return nil, err
		}
	}

	episode := &model.Episode{}
	applyEpisodeInput(episode, input)
	if err := s.repo.Create(ctx, episode); err != nil {
		return nil, fmt.Errorf("create episode: %w", err)
	}
	return episode, nil
}

func (s *episodeService) Update(ctx context.Context, id uint, input EpisodeInput) (*model.Episode, error) {
	episode, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if input.Slug != nil && *input.Slug != episode.Slug {
		if err := s.checkSlugFree(ctx, *input.Slug, episode.ID); err != nil {
			return nil, err
		}
	}

	applyEpisodeInput(episode, input)
	if err := s.repo.Update(ctx, episode); err != nil {
		return nil, fmt.Errorf("update episode: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return episode, nil
}

func (s *episodeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *episodeService) checkSlugFree(ctx context.Context, slug string, selfID uint) error {
	existing, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("check slug: %w", err)
	}
	if existing.ID == selfID {
		return nil
	}
	return apperrors.NewValidationError(apperrors.ErrSlugTaken.Error(), map[string]string{
		"slug": "the slug has already been taken",
	})
}

func applyEpisodeInput(episode *model.Episode, input EpisodeInput) {
	if input.Title != nil {
		episode.Title = *input.Title
	}
	if input.Description != nil {
		episode.Description = *input.Description
	}
	if input.ImgURL != nil {
		episode.ImgURL = *input.ImgURL
	}
	if input.AudioURL != nil {
		episode.AudioURL = *input.AudioURL
	}
	if input.Duration != nil {
		episode.Duration = *input.Duration
	}
	if input.PostedOn != nil {
		episode.PostedOn = *input.PostedOn
	}
	if input.Season != nil {
		episode.Season = *input.Season
	}
	if input.Episode != nil {
		episode.Episode = *input.Episode
	}
	if input.SpotifyURL != nil {
		episode.SpotifyURL = *input.SpotifyURL
	}
	if input.ApplePodcastsURL != nil {
		episode.ApplePodcastsURL = input.ApplePodcastsURL
	}
	if input.Archive != nil {
		episode.Archive = *input.Archive
	}
	if input.Featured != nil {
		episode.Featured = *input.Featured
	}
	if input.Slug != nil {
		episode.Slug = *input.Slug
	}
}
