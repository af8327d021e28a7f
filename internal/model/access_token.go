package model

import "time"

// AccessToken is a persisted bearer credential owned by exactly one user.
// Only the SHA-256 hash of the secret half is stored; the plaintext
// "<id>|<secret>" form is returned once at issue time.
type AccessToken struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"not null;index"`
	Name       string     `json:"name" gorm:"size:255;not null"`
	TokenHash  string     `json:"-" gorm:"uniqueIndex;size:64;not null"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
