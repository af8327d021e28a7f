package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bralash/rants-api/internal/model"
	"github.com/bralash/rants-api/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(ctx context.Context, user *model.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Revoke(ctx context.Context, plaintext string) error {
	args := m.Called(ctx, plaintext)
	return args.Error(0)
}

func (m *MockTokenIssuer) RevokeAllForUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockEpisodeRepository is a mock implementation of repository.EpisodeRepository.
type MockEpisodeRepository struct {
	mock.Mock
}

func (m *MockEpisodeRepository) Create(ctx context.Context, episode *model.Episode) error {
	args := m.Called(ctx, episode)
	return args.Error(0)
}

func (m *MockEpisodeRepository) Update(ctx context.Context, episode *model.Episode) error {
	args := m.Called(ctx, episode)
	return args.Error(0)
}

func (m *MockEpisodeRepository) FindByID(ctx context.Context, id uint) (*model.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) FindBySlug(ctx context.Context, slug string) (*model.Episode, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) List(ctx context.Context, page, perPage int) ([]model.Episode, int64, error) {
	args := m.Called(ctx, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Episode), args.Get(1).(int64), args.Error(2)
}

func (m *MockEpisodeRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEpisodeRepository) FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// MockPlaylistRepository is a mock implementation of repository.PlaylistRepository.
// WithTransaction runs the callback against the mock itself.
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, playlist *model.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) FindByID(ctx context.Context, id uint) (*model.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) FindByIDWithEpisodes(ctx context.Context, id uint) (*model.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) List(ctx context.Context, page, perPage int) ([]model.Playlist, int64, error) {
	args := m.Called(ctx, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Playlist), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaylistRepository) LinkedEpisodeIDs(ctx context.Context, playlistID uint) ([]uint, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockPlaylistRepository) AddLinks(ctx context.Context, playlistID uint, episodeIDs []uint) error {
	args := m.Called(ctx, playlistID, episodeIDs)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveLinks(ctx context.Context, playlistID uint, episodeIDs []uint) error {
	args := m.Called(ctx, playlistID, episodeIDs)
	return args.Error(0)
}

func (m *MockPlaylistRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.PlaylistRepository) error) error {
	return fn(ctx, m)
}

// MockTeamMemberRepository is a mock implementation of repository.TeamMemberRepository.
type MockTeamMemberRepository struct {
	mock.Mock
}

func (m *MockTeamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) Update(ctx context.Context, member *model.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) FindByID(ctx context.Context, id uint) (*model.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) FindByIDWithLinks(ctx context.Context, id uint) (*model.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) List(ctx context.Context, page, perPage int) ([]model.TeamMember, int64, error) {
	args := m.Called(ctx, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.TeamMember), args.Get(1).(int64), args.Error(2)
}

func (m *MockTeamMemberRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSocialLinkRepository is a mock implementation of repository.SocialLinkRepository.
type MockSocialLinkRepository struct {
	mock.Mock
}

func (m *MockSocialLinkRepository) Create(ctx context.Context, link *model.SocialMediaLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockSocialLinkRepository) Update(ctx context.Context, link *model.SocialMediaLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockSocialLinkRepository) FindByID(ctx context.Context, id uint) (*model.SocialMediaLink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SocialMediaLink), args.Error(1)
}

func (m *MockSocialLinkRepository) List(ctx context.Context, page, perPage int) ([]model.SocialMediaLink, int64, error) {
	args := m.Called(ctx, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.SocialMediaLink), args.Get(1).(int64), args.Error(2)
}

func (m *MockSocialLinkRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockConfessionRepository is a mock implementation of repository.ConfessionRepository.
type MockConfessionRepository struct {
	mock.Mock
}

func (m *MockConfessionRepository) Create(ctx context.Context, confession *model.Confession) error {
	args := m.Called(ctx, confession)
	return args.Error(0)
}

func (m *MockConfessionRepository) Update(ctx context.Context, confession *model.Confession) error {
	args := m.Called(ctx, confession)
	return args.Error(0)
}

func (m *MockConfessionRepository) FindByID(ctx context.Context, id uint) (*model.Confession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Confession), args.Error(1)
}

func (m *MockConfessionRepository) List(ctx context.Context, page, perPage int, approved *bool) ([]model.Confession, int64, error) {
	args := m.Called(ctx, page, perPage, approved)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Confession), args.Get(1).(int64), args.Error(2)
}

func (m *MockConfessionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
