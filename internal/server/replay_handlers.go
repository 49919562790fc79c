package server

import (
	"time"

	"evtele/internal/models"
	"evtele/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetReplays handles GET /api/replays?category=Music&limit=20&offset=0 (public)
func (s *Server) GetReplays(c *fiber.Ctx) error {
	ctx := c.UserContext()
	page := parsePagination(c, 20)

	replays, total, err := s.replayService.List(ctx, c.Query("category"), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"items": replays,
		"total": total,
	})
}

// GetLatestReplays handles GET /api/replays/latest (public)
func (s *Server) GetLatestReplays(c *fiber.Ctx) error {
	replays, err := s.replayService.Latest(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(replays)
}

// GetReplay handles GET /api/replays/:id (public). Fetching the detail page
// counts as a view; the returned payload already reflects the new count.
func (s *Server) GetReplay(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	replay, err := s.replayService.View(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(replay)
}

// GetRelatedReplays handles GET /api/replays/:id/related (public)
func (s *Server) GetRelatedReplays(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	replays, err := s.replayService.Related(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(replays)
}

// LikeReplay handles POST /api/replays/:id/like (public)
func (s *Server) LikeReplay(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.replayService.Like(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	s.publishBroadcastEvent(EventReplayLiked, map[string]interface{}{
		"replay_id":  id,
		"updated_at": time.Now().UTC().Format(time.RFC3339Nano),
	})

	return c.SendStatus(fiber.StatusOK)
}

// replayRequest is the admin payload for creating or updating a replay.
type replayRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	VideoURL    string    `json:"video_url"`
	DurationSec int       `json:"duration"`
	PublishedAt time.Time `json:"published_at"`
	Category    string    `json:"category"`
}

func (r replayRequest) toInput() service.ReplayInput {
	return service.ReplayInput{
		Title:       r.Title,
		Description: r.Description,
		Thumbnail:   r.Thumbnail,
		VideoURL:    r.VideoURL,
		DurationSec: r.DurationSec,
		PublishedAt: r.PublishedAt,
		Category:    r.Category,
	}
}

// CreateReplay handles POST /api/admin/replays (admin only)
func (s *Server) CreateReplay(c *fiber.Ctx) error {
	var req replayRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	replay, err := s.replayService.Create(c.UserContext(), req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(replay)
}

// UpdateReplay handles PUT /api/admin/replays/:id (admin only)
func (s *Server) UpdateReplay(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req replayRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	replay, err := s.replayService.Update(c.UserContext(), id, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(replay)
}

// DeleteReplay handles DELETE /api/admin/replays/:id (admin only)
func (s *Server) DeleteReplay(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.replayService.Delete(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.SendStatus(fiber.StatusOK)
}
