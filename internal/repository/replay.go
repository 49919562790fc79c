package repository

import (
	"context"
	"errors"

	"evtele/internal/cache"
	"evtele/internal/models"

	"gorm.io/gorm"
)

// ReplayRepository defines persistence operations for replays.
type ReplayRepository interface {
	Create(ctx context.Context, replay *models.Replay) error
	GetByID(ctx context.Context, id uint) (*models.Replay, error)
	Update(ctx context.Context, replay *models.Replay) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, category string, limit, offset int) ([]models.Replay, int64, error)
	Latest(ctx context.Context, limit int) ([]models.Replay, error)
	ListRelated(ctx context.Context, category string, excludeID uint, limit int) ([]models.Replay, error)
	IncrementViews(ctx context.Context, id uint) error
	IncrementLikes(ctx context.Context, id uint) error
}

type replayRepository struct {
	db *gorm.DB
}

// NewReplayRepository returns a new ReplayRepository implementation.
func NewReplayRepository(db *gorm.DB) ReplayRepository {
	return &replayRepository{db: db}
}

func (r *replayRepository) Create(ctx context.Context, replay *models.Replay) error {
	if err := r.db.WithContext(ctx).Create(replay).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateLatestReplays(ctx)
	return nil
}

func (r *replayRepository) GetByID(ctx context.Context, id uint) (*models.Replay, error) {
	var replay models.Replay
	if err := readDB(r.db).WithContext(ctx).First(&replay, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Replay", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &replay, nil
}

func (r *replayRepository) Update(ctx context.Context, replay *models.Replay) error {
	if err := r.db.WithContext(ctx).Save(replay).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateLatestReplays(ctx)
	return nil
}

func (r *replayRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Replay{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Replay", id)
	}
	cache.InvalidateLatestReplays(ctx)
	return nil
}

func (r *replayRepository) List(ctx context.Context, category string, limit, offset int) ([]models.Replay, int64, error) {
	var replays []models.Replay
	var total int64

	query := readDB(r.db).WithContext(ctx).Model(&models.Replay{})
	if category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	if err := query.Order("published_at desc").Limit(limit).Offset(offset).Find(&replays).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return replays, total, nil
}

func (r *replayRepository) Latest(ctx context.Context, limit int) ([]models.Replay, error) {
	var replays []models.Replay
	if err := readDB(r.db).WithContext(ctx).
		Order("published_at desc").
		Limit(limit).
		Find(&replays).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return replays, nil
}

func (r *replayRepository) ListRelated(ctx context.Context, category string, excludeID uint, limit int) ([]models.Replay, error) {
	var replays []models.Replay
	if err := readDB(r.db).WithContext(ctx).
		Where("category = ? AND id <> ?", category, excludeID).
		Order("published_at desc").
		Limit(limit).
		Find(&replays).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return replays, nil
}

// IncrementViews bumps the view counter in a single UPDATE so concurrent
// visits never lose a count.
func (r *replayRepository) IncrementViews(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.Replay{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Replay", id)
	}
	return nil
}

// IncrementLikes bumps the like counter atomically, same as IncrementViews.
func (r *replayRepository) IncrementLikes(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.Replay{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Replay", id)
	}
	return nil
}
