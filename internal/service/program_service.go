package service

import (
	"context"
	"strings"
	"time"

	"evtele/internal/models"
	"evtele/internal/repository"
	"evtele/internal/schedule"
	"evtele/internal/validation"
)

type ProgramService struct {
	programRepo  repository.ProgramRepository
	categoryRepo repository.CategoryRepository
}

type ProgramInput struct {
	Title       string
	Description string
	AirDate     *time.Time
	AirTime     string
	Duration    string
	Category    string
	Guests      string
	ImageURL    string
	Kind        string
}

func NewProgramService(
	programRepo repository.ProgramRepository,
	categoryRepo repository.CategoryRepository,
) *ProgramService {
	return &ProgramService{
		programRepo:  programRepo,
		categoryRepo: categoryRepo,
	}
}

// Guide returns one day of the program guide for a channel kind, already
// filtered and sorted. All day/time rules live in the schedule package.
func (s *ProgramService) Guide(ctx context.Context, day time.Time, kind, category string, now time.Time) ([]models.Program, error) {
	if err := validation.ValidateKind(kind); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if category == "" {
		category = schedule.CategoryAll
	}

	programs, err := s.programRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.Filter(programs, day, kind, category, now), nil
}

func (s *ProgramService) GetProgram(ctx context.Context, id uint) (*models.Program, error) {
	return s.programRepo.GetByID(ctx, id)
}

func (s *ProgramService) CreateProgram(ctx context.Context, in ProgramInput) (*models.Program, error) {
	program, err := programFromInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *ProgramService) UpdateProgram(ctx context.Context, id uint, in ProgramInput) (*models.Program, error) {
	existing, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := programFromInput(in)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.programRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ProgramService) DeleteProgram(ctx context.Context, id uint) error {
	return s.programRepo.Delete(ctx, id)
}

func (s *ProgramService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *ProgramService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidateCategoryName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *ProgramService) DeleteCategory(ctx context.Context, id uint) error {
	return s.categoryRepo.Delete(ctx, id)
}

func programFromInput(in ProgramInput) (*models.Program, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if err := validation.ValidateKind(in.Kind); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateAirTime(in.AirTime); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	return &models.Program{
		Title:       title,
		Description: in.Description,
		AirDate:     in.AirDate,
		AirTime:     in.AirTime,
		Duration:    in.Duration,
		Category:    strings.TrimSpace(in.Category),
		Guests:      in.Guests,
		ImageURL:    in.ImageURL,
		Kind:        in.Kind,
	}, nil
}
