package service

import (
	"context"
	"net/url"

	"evtele/internal/models"
	"evtele/internal/observability"
	"evtele/internal/repository"
	"evtele/internal/validation"
)

type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

type SettingsInput struct {
	DefaultViews      int64
	DefaultLikes      int64
	DefaultRadioViews int64
	DefaultRadioLikes int64
	TVStreamURL       string
	RadioStreamURL    string
}

func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) Get(ctx context.Context) (*models.SiteSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// Update replaces the settings row wholesale. Admin-only at the route level.
func (s *SettingsService) Update(ctx context.Context, in SettingsInput) (*models.SiteSettings, error) {
	if in.DefaultViews < 0 || in.DefaultLikes < 0 || in.DefaultRadioViews < 0 || in.DefaultRadioLikes < 0 {
		return nil, models.NewValidationError("Counter seeds cannot be negative")
	}
	if err := validateStreamURL(in.TVStreamURL); err != nil {
		return nil, err
	}
	if err := validateStreamURL(in.RadioStreamURL); err != nil {
		return nil, err
	}

	settings := &models.SiteSettings{
		ID:                models.SiteSettingsID,
		DefaultViews:      in.DefaultViews,
		DefaultLikes:      in.DefaultLikes,
		DefaultRadioViews: in.DefaultRadioViews,
		DefaultRadioLikes: in.DefaultRadioLikes,
		TVStreamURL:       in.TVStreamURL,
		RadioStreamURL:    in.RadioStreamURL,
	}
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// LikeChannel counts one like for a live channel.
func (s *SettingsService) LikeChannel(ctx context.Context, channel string) error {
	if err := validation.ValidateChannel(channel); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := s.settingsRepo.IncrementChannelLikes(ctx, channel); err != nil {
		return err
	}
	observability.RecordCounterIncrement("channel", "likes")
	return nil
}

func validateStreamURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return models.NewValidationError("Stream URL must be a valid http(s) URL")
	}
	return nil
}
