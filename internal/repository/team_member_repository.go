package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bralash/rants-api/internal/model"
)

// TeamMemberRepository defines team-member persistence operations.
type TeamMemberRepository interface {
	Create(ctx context.Context, member *model.TeamMember) error
	Update(ctx context.Context, member *model.TeamMember) error
	FindByID(ctx context.Context, id uint) (*model.TeamMember, error)
	FindByIDWithLinks(ctx context.Context, id uint) (*model.TeamMember, error)
	List(ctx context.Context, page, perPage int) ([]model.TeamMember, int64, error)
	Delete(ctx context.Context, id uint) error
}

type teamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository builds a GORM-backed repository.
func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

// Create persists the member and any nested social media links in one insert.
func (r *teamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamMemberRepository) Update(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Omit("SocialMediaLinks").Save(member).Error
}

func (r *teamMemberRepository) FindByID(ctx context.Context, id uint) (*model.TeamMember, error) {
	var member model.TeamMember
	if err := r.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamMemberRepository) FindByIDWithLinks(ctx context.Context, id uint) (*model.TeamMember, error) {
	var member model.TeamMember
	if err := r.db.WithContext(ctx).Preload("SocialMediaLinks").First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamMemberRepository) List(ctx context.Context, page, perPage int) ([]model.TeamMember, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.TeamMember{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []model.TeamMember
	offset := (page - 1) * perPage
	if err := r.db.WithContext(ctx).Preload("SocialMediaLinks").
		Order("id").Offset(offset).Limit(perPage).
		Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// Delete removes the member and cascades to their social media links.
func (r *teamMemberRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_member_id = ?", id).Delete(&model.SocialMediaLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TeamMember{}, id).Error
	})
}
