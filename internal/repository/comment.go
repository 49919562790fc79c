package repository

import (
	"context"

	"evtele/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments. Comments are
// append-only; there are deliberately no update or delete methods.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByScope(ctx context.Context, scope string, limit int) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListByScope returns the most recent comments for a scope, newest first.
func (r *commentRepository) ListByScope(ctx context.Context, scope string, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	if err := readDB(r.db).WithContext(ctx).
		Where("scope = ?", scope).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
