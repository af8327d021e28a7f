package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestEpisodeService_CreateRejectsTakenSlug(t *testing.T) {
	repo := new(MockEpisodeRepository)
	repo.On("FindBySlug", mock.Anything, "episode-1").Return(&model.Episode{ID: 3, Slug: "episode-1"}, nil)

	svc := NewEpisodeService(repo, nil)
	episode, err := svc.Create(context.Background(), EpisodeInput{
		Title: strPtr("Episode 1"),
		Slug:  strPtr("episode-1"),
	})

	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "slug")
	assert.Nil(t, episode)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEpisodeService_Create(t *testing.T) {
	repo := new(MockEpisodeRepository)
	repo.On("FindBySlug", mock.Anything, "episode-1").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Episode")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Episode).ID = 1
		}).Return(nil)

	svc := NewEpisodeService(repo, nil)
	episode, err := svc.Create(context.Background(), EpisodeInput{
		Title:   strPtr("Episode 1"),
		Season:  intPtr(1),
		Episode: intPtr(1),
		Slug:    strPtr("episode-1"),
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), episode.ID)
	assert.Equal(t, "Episode 1", episode.Title)
	assert.Equal(t, "episode-1", episode.Slug)
}

func TestEpisodeService_UpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := new(MockEpisodeRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&model.Episode{
		ID:      1,
		Title:   "Old title",
		Season:  1,
		Episode: 4,
		Slug:    "episode-4",
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Episode")).Return(nil)

	svc := NewEpisodeService(repo, nil)
	episode, err := svc.Update(context.Background(), 1, EpisodeInput{Title: strPtr("New title")})

	assert.NoError(t, err)
	assert.Equal(t, "New title", episode.Title)
	assert.Equal(t, 4, episode.Episode)
	assert.Equal(t, "episode-4", episode.Slug)
	repo.AssertNotCalled(t, "FindBySlug", mock.Anything, mock.Anything)
}

func TestEpisodeService_UpdateKeepingOwnSlug(t *testing.T) {
	repo := new(MockEpisodeRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&model.Episode{ID: 1, Slug: "episode-1"}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Episode")).Return(nil)

	svc := NewEpisodeService(repo, nil)
	_, err := svc.Update(context.Background(), 1, EpisodeInput{Slug: strPtr("episode-1")})

	assert.NoError(t, err)
	// unchanged slug needs no uniqueness lookup
	repo.AssertNotCalled(t, "FindBySlug", mock.Anything, mock.Anything)
}

func TestEpisodeService_GetNotFound(t *testing.T) {
	repo := new(MockEpisodeRepository)
	repo.On("FindByID", mock.Anything, uint(77)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewEpisodeService(repo, nil)
	episode, err := svc.Get(context.Background(), 77)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, episode)
}

func TestEpisodeService_Delete(t *testing.T) {
	repo := new(MockEpisodeRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&model.Episode{ID: 1}, nil)
	repo.On("Delete", mock.Anything, uint(1)).Return(nil)

	svc := NewEpisodeService(repo, nil)
	assert.NoError(t, svc.Delete(context.Background(), 1))
	repo.AssertExpectations(t)
}
