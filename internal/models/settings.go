package models

import (
	"time"
)

// SiteSettingsID is the primary key of the single settings row.
const SiteSettingsID = 1

// Channel identifiers accepted by the per-channel like endpoint.
const (
	ChannelTV    = "tv"
	ChannelRadio = "radio"
)

// SiteSettings is a singleton row holding site-wide seed counters and the
// live stream URLs. The default_* columns are incremented atomically by the
// channel like endpoint; admins may rewrite them wholesale.
type SiteSettings struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	DefaultViews      int64     `gorm:"not null;default:0" json:"default_views"`
	DefaultLikes      int64     `gorm:"not null;default:0" json:"default_likes"`
	DefaultRadioViews int64     `gorm:"not null;default:0" json:"default_radio_views"`
	DefaultRadioLikes int64     `gorm:"not null;default:0" json:"default_radio_likes"`
	TVStreamURL       string    `gorm:"size:500" json:"tv_stream_url"`
	RadioStreamURL    string    `gorm:"size:500" json:"radio_stream_url"`
	UpdatedAt         time.Time `json:"updated_at"`
}
