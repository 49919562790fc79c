package models

import (
	"time"

	"gorm.io/gorm"
)

// Replay is an on-demand recording of a past broadcast. Views and Likes are
// vanity counters, only ever mutated through atomic column increments.
type Replay struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Thumbnail   string         `gorm:"size:500" json:"thumbnail"`
	VideoURL    string         `gorm:"size:500" json:"video_url"`
	DurationSec int            `gorm:"default:0" json:"duration"`
	PublishedAt time.Time      `gorm:"index" json:"published_at"`
	Views       int64          `gorm:"not null;default:0" json:"views"`
	Likes       int64          `gorm:"not null;default:0" json:"likes"`
	Category    string         `gorm:"size:100;index" json:"category"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
