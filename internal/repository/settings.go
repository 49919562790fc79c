package repository

import (
	"context"
	"errors"
	"fmt"

	"evtele/internal/cache"
	"evtele/internal/models"

	"gorm.io/gorm"
)

// SettingsRepository manages the singleton site settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, settings *models.SiteSettings) error
	IncrementChannelLikes(ctx context.Context, channel string) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository returns a new SettingsRepository implementation.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the settings row, creating it with zero values on first access.
func (r *settingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings

	err := cache.Aside(ctx, cache.SettingsKey, &settings, cache.SettingsTTL, func() error {
		if err := readDB(r.db).WithContext(ctx).First(&settings, models.SiteSettingsID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewInternalError(err)
			}
			settings = models.SiteSettings{ID: models.SiteSettingsID}
			if err := r.db.WithContext(ctx).FirstOrCreate(&settings, models.SiteSettings{ID: models.SiteSettingsID}).Error; err != nil {
				return models.NewInternalError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *models.SiteSettings) error {
	settings.ID = models.SiteSettingsID
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateSettings(ctx)
	return nil
}

// IncrementChannelLikes bumps the like seed for one channel. Each channel has
// its own column, so concurrent likes on different channels never clobber
// each other.
func (r *settingsRepository) IncrementChannelLikes(ctx context.Context, channel string) error {
	var column string
	switch channel {
	case models.ChannelTV:
		column = "default_likes"
	case models.ChannelRadio:
		column = "default_radio_likes"
	default:
		return models.NewValidationError(fmt.Sprintf("unknown channel %q", channel))
	}

	result := r.db.WithContext(ctx).Model(&models.SiteSettings{}).
		Where("id = ?", models.SiteSettingsID).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		// Row not seeded yet; create it and retry once.
		if _, err := r.Get(ctx); err != nil {
			return err
		}
		result = r.db.WithContext(ctx).Model(&models.SiteSettings{}).
			Where("id = ?", models.SiteSettingsID).
			UpdateColumn(column, gorm.Expr(column+" + 1"))
		if result.Error != nil {
			return models.NewInternalError(result.Error)
		}
	}
	cache.InvalidateSettings(ctx)
	return nil
}
