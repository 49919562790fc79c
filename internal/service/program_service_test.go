package service

import (
	"context"
	"testing"
	"time"

	"evtele/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	createFn func(context.Context, *models.Category) error
	listFn   func(context.Context) ([]models.Category, error)
	deleteFn func(context.Context, uint) error
}

func (s *categoryRepoStub) Create(ctx context.Context, c *models.Category) error {
	return s.createFn(ctx, c)
}
func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		createFn: func(_ context.Context, _ *models.Category) error { return nil },
		listFn:   func(_ context.Context) ([]models.Category, error) { return nil, nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func TestProgramService_Guide_FiltersAndSorts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)

	repo := noopProgramRepo()
	repo.listFn = func(_ context.Context) ([]models.Program, error) {
		return []models.Program{
			{Title: "Past Show", AirDate: &today, AirTime: "08:00", Kind: "tv"},
			{Title: "Evening Show", AirDate: &today, AirTime: "20:00", Kind: "tv"},
			{Title: "Noon Show", AirDate: &today, AirTime: "12:00", Kind: "tv"},
			{Title: "Radio Hour", AirDate: &today, AirTime: "15:00", Kind: "radio"},
		}, nil
	}

	svc := NewProgramService(repo, noopCategoryRepo())

	programs, err := svc.Guide(context.Background(), today, "tv", "", now)
	require.NoError(t, err)
	require.Len(t, programs, 2)
	assert.Equal(t, "Noon Show", programs[0].Title)
	assert.Equal(t, "Evening Show", programs[1].Title)
}

func TestProgramService_Guide_RejectsUnknownKind(t *testing.T) {
	t.Parallel()

	svc := NewProgramService(noopProgramRepo(), noopCategoryRepo())

	_, err := svc.Guide(context.Background(), time.Now(), "podcast", "All", time.Now())
	assertValidationError(t, err)
}

func TestProgramService_CreateProgram_Validation(t *testing.T) {
	t.Parallel()

	svc := NewProgramService(noopProgramRepo(), noopCategoryRepo())
	ctx := context.Background()

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateProgram(ctx, ProgramInput{AirTime: "20:00", Kind: "tv"})
		assertValidationError(t, err)
	})

	t.Run("bad air time", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateProgram(ctx, ProgramInput{Title: "Show", AirTime: "8pm", Kind: "tv"})
		assertValidationError(t, err)
	})

	t.Run("bad kind", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateProgram(ctx, ProgramInput{Title: "Show", AirTime: "20:00", Kind: "web"})
		assertValidationError(t, err)
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		program, err := svc.CreateProgram(ctx, ProgramInput{Title: " Show ", AirTime: "20:00", Kind: "tv"})
		require.NoError(t, err)
		assert.Equal(t, "Show", program.Title)
	})
}

func TestProgramService_CreateCategory_RejectsWildcard(t *testing.T) {
	t.Parallel()

	svc := NewProgramService(noopProgramRepo(), noopCategoryRepo())

	_, err := svc.CreateCategory(context.Background(), "All")
	assertValidationError(t, err)
}
