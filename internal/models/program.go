package models

import (
	"time"
)

// Broadcast kinds for guide entries and live channels.
const (
	KindTV    = "tv"
	KindRadio = "radio"
)

// Program is a single program-guide entry. AirDate carries the calendar day
// only; AirTime is the 24h wall-clock start as "HH:MM" so entries within a
// day sort correctly with a plain string compare.
type Program struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	AirDate     *time.Time `gorm:"index" json:"date"`
	AirTime     string     `gorm:"size:5;not null" json:"time"`
	Duration    string     `gorm:"size:50" json:"duration"`
	Category    string     `gorm:"size:100;index" json:"category"`
	Guests      string     `gorm:"type:text" json:"guests"`
	ImageURL    string     `gorm:"size:500" json:"image_url"`
	Kind        string     `gorm:"size:10;not null;index" json:"type"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Category is a guide filter label. Names are unique at the database level.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
