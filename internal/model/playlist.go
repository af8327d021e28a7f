package model

import "time"

// Playlist is a named collection of episodes.
type Playlist struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Episodes []Episode `json:"episodes,omitempty" gorm:"many2many:playlist_episode;"`
}

// PlaylistEpisode is the join row between playlists and episodes. It carries
// timestamps only; there is no ordering column and a pair appears at most once.
type PlaylistEpisode struct {
	PlaylistID uint      `json:"playlist_id" gorm:"primaryKey"`
	EpisodeID  uint      `json:"episode_id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName keeps the singular join-table name used by the schema.
func (PlaylistEpisode) TableName() string {
	return "playlist_episode"
}
