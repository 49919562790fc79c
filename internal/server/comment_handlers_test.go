package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"evtele/internal/config"
	"evtele/internal/models"
	"evtele/internal/notifications"
	"evtele/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// commentRepoRecorder records Create calls and serves a canned feed.
type commentRepoRecorder struct {
	created []models.Comment
	feed    []models.Comment
}

func (r *commentRepoRecorder) Create(_ context.Context, comment *models.Comment) error {
	comment.ID = uint(len(r.created) + 1)
	r.created = append(r.created, *comment)
	return nil
}

func (r *commentRepoRecorder) ListByScope(_ context.Context, scope string, limit int) ([]models.Comment, error) {
	out := make([]models.Comment, 0, limit)
	for _, comment := range r.feed {
		if comment.Scope == scope && len(out) < limit {
			out = append(out, comment)
		}
	}
	return out, nil
}

// programRepoEmpty satisfies ProgramRepository for scopes that never hit it.
type programRepoEmpty struct{}

func (programRepoEmpty) Create(context.Context, *models.Program) error { return nil }
func (programRepoEmpty) GetByID(_ context.Context, id uint) (*models.Program, error) {
	return nil, models.NewNotFoundError("Program", id)
}
func (programRepoEmpty) Update(context.Context, *models.Program) error { return nil }
func (programRepoEmpty) Delete(context.Context, uint) error            { return nil }
func (programRepoEmpty) List(context.Context) ([]models.Program, error) {
	return nil, nil
}

func newCommentTestServer(repo *commentRepoRecorder, userRepo *MockUserRepository) *Server {
	s := &Server{
		config:   &config.Config{JWTSecret: "test_secret"},
		userRepo: userRepo,
		hub:      notifications.NewHub(),
	}
	s.commentService = service.NewCommentService(repo, programRepoEmpty{})
	s.userService = service.NewUserService(userRepo)
	return s
}

func TestCreateComment_RequiresAuth(t *testing.T) {
	repo := &commentRepoRecorder{}
	s := newCommentTestServer(repo, new(MockUserRepository))

	app := fiber.New()
	app.Post("/api/comments/:scope", s.AuthRequired(), s.CreateComment)

	body, _ := json.Marshal(map[string]string{"text": "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/comments/live-tv", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, repo.created, "anonymous requests never reach the store")
}

func TestCreateComment_FreezesUsername(t *testing.T) {
	repo := &commentRepoRecorder{}
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, uint(7)).Return(&models.User{
		ID:       7,
		Username: "viewer_7",
	}, nil)

	s := newCommentTestServer(repo, userRepo)

	token, err := s.generateToken(7, "viewer_7")
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/api/comments/:scope", s.AuthRequired(), s.CreateComment)

	body, _ := json.Marshal(map[string]string{"text": "  bonjour  "})
	req := httptest.NewRequest(http.MethodPost, "/api/comments/live-radio", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "live-radio", repo.created[0].Scope)
	assert.Equal(t, "viewer_7", repo.created[0].Username)
	assert.Equal(t, "bonjour", repo.created[0].Body)
}

func TestCreateComment_UnknownProgramScope(t *testing.T) {
	repo := &commentRepoRecorder{}
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, uint(7)).Return(&models.User{
		ID:       7,
		Username: "viewer_7",
	}, nil)

	s := newCommentTestServer(repo, userRepo)

	token, err := s.generateToken(7, "viewer_7")
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/api/comments/:scope", s.AuthRequired(), s.CreateComment)

	body, _ := json.Marshal(map[string]string{"text": "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/comments/4242", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, repo.created)
}

func TestGetComments_PublicFeed(t *testing.T) {
	repo := &commentRepoRecorder{
		feed: []models.Comment{
			{ID: 2, Scope: "live-tv", Username: "b", Body: "second"},
			{ID: 1, Scope: "live-tv", Username: "a", Body: "first"},
			{ID: 3, Scope: "live-radio", Username: "c", Body: "other feed"},
		},
	}
	s := newCommentTestServer(repo, new(MockUserRepository))

	app := fiber.New()
	app.Get("/api/comments/:scope", s.GetComments)

	req := httptest.NewRequest(http.MethodGet, "/api/comments/live-tv", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var comments []models.Comment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&comments))
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Body)
}
