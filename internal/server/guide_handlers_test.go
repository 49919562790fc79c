package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"evtele/internal/models"
	"evtele/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// programRepoFixed serves a fixed schedule.
type programRepoFixed struct {
	programs []models.Program
}

func (r *programRepoFixed) Create(context.Context, *models.Program) error { return nil }
func (r *programRepoFixed) GetByID(_ context.Context, id uint) (*models.Program, error) {
	for i := range r.programs {
		if r.programs[i].ID == id {
			return &r.programs[i], nil
		}
	}
	return nil, models.NewNotFoundError("Program", id)
}
func (r *programRepoFixed) Update(context.Context, *models.Program) error { return nil }
func (r *programRepoFixed) Delete(context.Context, uint) error            { return nil }
func (r *programRepoFixed) List(_ context.Context) ([]models.Program, error) {
	return r.programs, nil
}

// categoryRepoFixed serves a fixed category list.
type categoryRepoFixed struct {
	categories []models.Category
}

func (r *categoryRepoFixed) Create(context.Context, *models.Category) error { return nil }
func (r *categoryRepoFixed) List(_ context.Context) ([]models.Category, error) {
	return r.categories, nil
}
func (r *categoryRepoFixed) Delete(context.Context, uint) error { return nil }

func newGuideTestServer(programs []models.Program) *Server {
	s := &Server{}
	s.programService = service.NewProgramService(
		&programRepoFixed{programs: programs},
		&categoryRepoFixed{categories: []models.Category{{ID: 1, Name: "Music"}}},
	)
	return s
}

func TestGetGuide_FutureDateSortedByTime(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1)
	day := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())

	s := newGuideTestServer([]models.Program{
		{ID: 1, Title: "Evening Show", AirDate: &day, AirTime: "20:00", Kind: models.KindTV},
		{ID: 2, Title: "Morning Show", AirDate: &day, AirTime: "08:00", Kind: models.KindTV},
		{ID: 3, Title: "Radio Hour", AirDate: &day, AirTime: "10:00", Kind: models.KindRadio},
	})

	app := fiber.New()
	app.Get("/api/programs", s.GetGuide)

	url := fmt.Sprintf("/api/programs?date=%s&type=tv", day.Format("2006-01-02"))
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var programs []models.Program
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&programs))
	require.Len(t, programs, 2)
	assert.Equal(t, "Morning Show", programs[0].Title)
	assert.Equal(t, "Evening Show", programs[1].Title)
}

func TestGetGuide_PastDateReturnsEmptyList(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	day := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location())

	s := newGuideTestServer([]models.Program{
		{ID: 1, Title: "Old Show", AirDate: &day, AirTime: "20:00", Kind: models.KindTV},
	})

	app := fiber.New()
	app.Get("/api/programs", s.GetGuide)

	url := fmt.Sprintf("/api/programs?date=%s&type=tv", day.Format("2006-01-02"))
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The body must be [] rather than null so clients can iterate blindly.
	raw := make([]byte, 4)
	n, _ := resp.Body.Read(raw)
	assert.Equal(t, "[]", string(raw[:n]))
}

func TestGetGuide_BadInputs(t *testing.T) {
	s := newGuideTestServer(nil)

	app := fiber.New()
	app.Get("/api/programs", s.GetGuide)

	tests := []struct {
		name string
		url  string
	}{
		{"malformed date", "/api/programs?date=tomorrow"},
		{"unknown kind", "/api/programs?type=podcast"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGetCategories_Public(t *testing.T) {
	s := newGuideTestServer(nil)

	app := fiber.New()
	app.Get("/api/categories", s.GetCategories)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []models.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Music", categories[0].Name)
}
