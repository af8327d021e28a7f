package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/model"
	"github.com/bralash/rants-api/internal/repository"
)

// SocialLinkUpdate carries a partial field update; nil fields are untouched.
type SocialLinkUpdate struct {
	Platform *string
	URL      *string
}

// SocialLinkService exposes standalone social-media-link CRUD.
type SocialLinkService interface {
	List(ctx context.Context, page, perPage int) ([]model.SocialMediaLink, int64, error)
	Get(ctx context.Context, id uint) (*model.SocialMediaLink, error)
	Create(ctx context.Context, teamMemberID uint, platform, url string) (*model.SocialMediaLink, error)
	Update(ctx context.Context, id uint, update SocialLinkUpdate) (*model.SocialMediaLink, error)
	Delete(ctx context.Context, id uint) error
}

type socialLinkService struct {
	links   repository.SocialLinkRepository
	members repository.TeamMemberRepository
}

// NewSocialLinkService creates a new social link service.
func NewSocialLinkService(links repository.SocialLinkRepository, members repository.TeamMemberRepository) SocialLinkService {
	return &socialLinkService{links: links, members: members}
}

func (s *socialLinkService) List(ctx context.Context, page, perPage int) ([]model.SocialMediaLink, int64, error) {
	return s.links.List(ctx, page, perPage)
}

func (s *socialLinkService) Get(ctx context.Context, id uint) (*model.SocialMediaLink, error) {
	link, err := s.links.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return link, nil
}

// Create attaches a link to an existing team member; an unknown member id is
// a validation error, matching the exists rule on the original endpoint.
func (s *socialLinkService) Create(ctx context.Context, teamMemberID uint, platform, url string) (*model.SocialMediaLink, error) {
	if _, err := s.members.FindByID(ctx, teamMemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("unknown team member id", map[string]string{
				"team_member_id": "the team member must exist",
			})
		}
		return nil, err
	}

	link := &model.SocialMediaLink{
		TeamMemberID: teamMemberID,
		Platform:     platform,
		URL:          url,
	}
	if err := s.links.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("create social media link: %w", err)
	}
	return link, nil
}

func (s *socialLinkService) Update(ctx context.Context, id uint, update SocialLinkUpdate) (*model.SocialMediaLink, error) {
	link, err := s.links.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if update.Platform != nil {
		link.Platform = *update.Platform
	}
	if update.URL != nil {
		link.URL = *update.URL
	}

	link.TeamMember = nil
	if err := s.links.Update(ctx, link); err != nil {
		return nil, fmt.Errorf("update social media link: %w", err)
	}
	return link, nil
}

func (s *socialLinkService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.links.Delete(ctx, id)
}
