package model

import "time"

// Episode represents a single podcast episode.
type Episode struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"size:255;not null"`
	Description      string    `json:"description" gorm:"type:text;not null"`
	ImgURL           string    `json:"img_url" gorm:"size:255;not null"`
	AudioURL         string    `json:"audio_url" gorm:"size:255;not null"`
	Duration         string    `json:"duration" gorm:"size:20;not null"`
	PostedOn         string    `json:"posted_on" gorm:"size:255;not null"`
	Season           int       `json:"season" gorm:"not null"`
	Episode          int       `json:"episode" gorm:"not null"`
	SpotifyURL       string    `json:"spotify_url" gorm:"size:255;not null"`
	ApplePodcastsURL *string   `json:"apple_podcasts_url" gorm:"size:255"`
	Archive          bool      `json:"archive" gorm:"default:false"`
	Featured         bool      `json:"featured" gorm:"default:false"`
	Slug             string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Playlists []Playlist `json:"-" gorm:"many2many:playlist_episode;"`
}
