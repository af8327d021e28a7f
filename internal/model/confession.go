package model

import "time"

// Confession is an anonymous submission. It starts unapproved; an admin may
// toggle approval back and forth, and deletion is the only terminal action.
type Confession struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Message    string    `json:"message" gorm:"type:text;not null"`
	Category   string    `json:"category" gorm:"size:255"`
	Emotion    string    `json:"emotion" gorm:"size:255"`
	IsApproved bool      `json:"is_approved" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
