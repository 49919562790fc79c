package repository

import (
	"context"
	"errors"

	"evtele/internal/models"

	"gorm.io/gorm"
)

// ProgramRepository defines persistence operations for guide programs.
type ProgramRepository interface {
	Create(ctx context.Context, program *models.Program) error
	GetByID(ctx context.Context, id uint) (*models.Program, error)
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Program, error)
}

type programRepository struct {
	db *gorm.DB
}

// NewProgramRepository returns a new ProgramRepository implementation.
func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) Create(ctx context.Context, program *models.Program) error {
	if err := r.db.WithContext(ctx).Create(program).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *programRepository) GetByID(ctx context.Context, id uint) (*models.Program, error) {
	var program models.Program
	if err := readDB(r.db).WithContext(ctx).First(&program, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Program", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &program, nil
}

func (r *programRepository) Update(ctx context.Context, program *models.Program) error {
	if err := r.db.WithContext(ctx).Save(program).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *programRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Program{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Program", id)
	}
	return nil
}

// List returns the full guide. The guide is bounded (a few weeks of entries),
// so day and category selection stay in the schedule filter rather than being
// duplicated as SQL.
func (r *programRepository) List(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program
	if err := readDB(r.db).WithContext(ctx).Find(&programs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return programs, nil
}
