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

func TestTeamMemberService_CreateWithNestedLinks(t *testing.T) {
	repo := new(MockTeamMemberRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.TeamMember")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.TeamMember).ID = 1
		}).Return(nil)

	svc := NewTeamMemberService(repo)
	member, err := svc.Create(context.Background(), "Ama", "Producer", "Makes the show happen", "", []SocialLinkInput{
		{Platform: "twitter", URL: "https://twitter.com/ama"},
		{Platform: "instagram", URL: "https://instagram.com/ama"},
	})

	assert.NoError(t, err)
	assert.Len(t, member.SocialMediaLinks, 2)
	assert.Equal(t, "twitter", member.SocialMediaLinks[0].Platform)
}

func TestTeamMemberService_UpdatePartialFields(t *testing.T) {
	repo := new(MockTeamMemberRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&model.TeamMember{
		ID:   1,
		Name: "Ama",
		Role: "Producer",
		Bio:  "Old bio",
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.TeamMember")).Return(nil)
	repo.On("FindByIDWithLinks", mock.Anything, uint(1)).Return(&model.TeamMember{
		ID:   1,
		Name: "Ama",
		Role: "Executive Producer",
		Bio:  "Old bio",
	}, nil)

	svc := NewTeamMemberService(repo)
	role := "Executive Producer"
	member, err := svc.Update(context.Background(), 1, TeamMemberUpdate{Role: &role})

	assert.NoError(t, err)
	assert.Equal(t, "Executive Producer", member.Role)
	assert.Equal(t, "Old bio", member.Bio)
}

func TestTeamMemberService_DeleteCascades(t *testing.T) {
	repo := new(MockTeamMemberRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&model.TeamMember{ID: 1}, nil)
	repo.On("Delete", mock.Anything, uint(1)).Return(nil)

	svc := NewTeamMemberService(repo)
	assert.NoError(t, svc.Delete(context.Background(), 1))
	repo.AssertCalled(t, "Delete", mock.Anything, uint(1))
}

func TestTeamMemberService_DeleteNotFound(t *testing.T) {
	repo := new(MockTeamMemberRepository)
	repo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewTeamMemberService(repo)
	err := svc.Delete(context.Background(), 9)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSocialLinkService_CreateRequiresExistingMember(t *testing.T) {
	links := new(MockSocialLinkRepository)
	members := new(MockTeamMemberRepository)
	members.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewSocialLinkService(links, members)
	link, err := svc.Create(context.Background(), 42, "tiktok", "https://tiktok.com/@show")

	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "team_member_id")
	assert.Nil(t, link)
	links.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSocialLinkService_Create(t *testing.T) {
	links := new(MockSocialLinkRepository)
	members := new(MockTeamMemberRepository)
	members.On("FindByID", mock.Anything, uint(1)).Return(&model.TeamMember{ID: 1}, nil)
	links.On("Create", mock.Anything, mock.AnythingOfType("*model.SocialMediaLink")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.SocialMediaLink).ID = 1
		}).Return(nil)

	svc := NewSocialLinkService(links, members)
	link, err := svc.Create(context.Background(), 1, "tiktok", "https://tiktok.com/@show")

	assert.NoError(t, err)
	assert.Equal(t, uint(1), link.TeamMemberID)
	assert.Equal(t, "tiktok", link.Platform)
}
