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

// SocialLinkInput is a nested link supplied when creating a team member.
type SocialLinkInput struct {
	Platform string
	URL      string
}

// TeamMemberUpdate carries a partial field update; nil fields are untouched.
type TeamMemberUpdate struct {
	Name         *string
	Role         *string
	Bio          *string
	ProfileImage *string
}

// TeamMemberService exposes team-member CRUD with nested social links.
type TeamMemberService interface {
	List(ctx context.Context, page, perPage int) ([]model.TeamMember, int64, error)
	Get(ctx context.Context, id uint) (*model.TeamMember, error)
	Create(ctx context.Context, name, role, bio, profileImage string, links []SocialLinkInput) (*model.TeamMember, error)
	Update(ctx context.Context, id uint, update TeamMemberUpdate) (*model.TeamMember, error)
	Delete(ctx context.Context, id uint) error
}

type teamMemberService struct {
	repo repository.TeamMemberRepository
}

// NewTeamMemberService creates a new team member service.
func NewTeamMemberService(repo repository.TeamMemberRepository) TeamMemberService {
	return &teamMemberService{repo: repo}
}

func (s *teamMemberService) List(ctx context.Context, page, perPage int) ([]model.TeamMember, int64, error) {
	return s.repo.List(ctx, page, perPage)
}

func (s *teamMemberService) Get(ctx context.Context, id uint) (*model.TeamMember, error) {
	member, err := s.repo.FindByIDWithLinks(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *teamMemberService) Create(ctx context.Context, name, role, bio, profileImage string, links []SocialLinkInput) (*model.TeamMember, error) {
	member := &model.TeamMember{
		Name:         name,
		Role:         role,
		Bio:          bio,
		ProfileImage: profileImage,
	}
	for _, link := range links {
		member.SocialMediaLinks = append(member.SocialMediaLinks, model.SocialMediaLink{
			Platform: link.Platform,
			URL:      link.URL,
		})
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}
	return member, nil
}

func (s *teamMemberService) Update(ctx context.Context, id uint, update TeamMemberUpdate) (*model.TeamMember, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		member.Name = *update.Name
	}
	if update.Role != nil {
		member.Role = *update.Role
	}
	if update.Bio != nil {
		member.Bio = *update.Bio
	}
	if update.ProfileImage != nil {
		member.ProfileImage = *update.ProfileImage
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("update team member: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes the member; their social media links go with them.
func (s *teamMemberService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
