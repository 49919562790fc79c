package server

import (
	"time"

	"evtele/internal/models"
	"evtele/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSettings handles GET /api/settings (public). The singleton row is
// created with zeroed counters on first read.
func (s *Server) GetSettings(c *fiber.Ctx) error {
	settings, err := s.settingsService.Get(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(settings)
}

// LikeChannel handles POST /api/channels/:channel/like (public). Each live
// channel keeps its own counter.
func (s *Server) LikeChannel(c *fiber.Ctx) error {
	channel := c.Params("channel")

	if err := s.settingsService.LikeChannel(c.UserContext(), channel); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	s.publishBroadcastEvent(EventChannelLiked, map[string]interface{}{
		"channel":    channel,
		"updated_at": time.Now().UTC().Format(time.RFC3339Nano),
	})

	return c.SendStatus(fiber.StatusOK)
}

// UpdateSettings handles PUT /api/admin/settings (admin only)
func (s *Server) UpdateSettings(c *fiber.Ctx) error {
	var req struct {
		DefaultViews      int64  `json:"default_views"`
		DefaultLikes      int64  `json:"default_likes"`
		DefaultRadioViews int64  `json:"default_radio_views"`
		DefaultRadioLikes int64  `json:"default_radio_likes"`
		TVStreamURL       string `json:"tv_stream_url"`
		RadioStreamURL    string `json:"radio_stream_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	settings, err := s.settingsService.Update(c.UserContext(), service.SettingsInput{
		DefaultViews:      req.DefaultViews,
		DefaultLikes:      req.DefaultLikes,
		DefaultRadioViews: req.DefaultRadioViews,
		DefaultRadioLikes: req.DefaultRadioLikes,
		TVStreamURL:       req.TVStreamURL,
		RadioStreamURL:    req.RadioStreamURL,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	s.publishBroadcastEvent(EventSettingsUpdated, map[string]interface{}{
		"settings":   settings,
		"updated_at": time.Now().UTC().Format(time.RFC3339Nano),
	})

	return c.JSON(settings)
}
