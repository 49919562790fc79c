package models

import (
	"time"
)

// Fixed comment scopes for the live channels. Every other scope is the
// decimal ID of a program.
const (
	ScopeLiveTV    = "live-tv"
	ScopeLiveRadio = "live-radio"
)

// Comment is an append-only message attached to a scope (a program or one of
// the live channels). Username is denormalized at post time so a later
// display-name change does not rewrite history.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Scope     string    `gorm:"size:64;not null;index" json:"scope"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Username  string    `gorm:"size:30;not null" json:"username"`
	Body      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"index" json:"timestamp"`
}
