package model

import "time"

// TeamMember represents a member of the podcast team.
type TeamMember struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Role         string    `json:"role" gorm:"size:255;not null"`
	Bio          string    `json:"bio" gorm:"type:text"`
	ProfileImage string    `json:"profile_image" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	SocialMediaLinks []SocialMediaLink `json:"social_media_links,omitempty" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE"`
}

// SocialMediaLink belongs to exactly one team member.
type SocialMediaLink struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TeamMemberID uint      `json:"team_member_id" gorm:"not null;index"`
	Platform     string    `json:"platform" gorm:"size:255;not null"`
	URL          string    `json:"url" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	TeamMember *TeamMember `json:"team_member,omitempty" gorm:"foreignKey:TeamMemberID"`
}
