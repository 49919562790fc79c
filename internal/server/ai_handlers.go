package server

import (
	"errors"

	"evtele/internal/aiclient"
	"evtele/internal/featureflags"
	"evtele/internal/models"

	"github.com/gofiber/fiber/v2"
)

// assistantEnabled reports whether the text-generation endpoints are open for
// the current user.
func (s *Server) assistantEnabled(c *fiber.Ctx) bool {
	return s.featureFlags.Enabled(featureflags.FlagAssistant, mustUserID(c))
}

// RecommendPrograms handles POST /api/ai/recommendations (protected, flag-gated)
func (s *Server) RecommendPrograms(c *fiber.Ctx) error {
	if !s.assistantEnabled(c) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	var req struct {
		ViewingHistory []string `json:"viewing_history"`
		Interests      []string `json:"interests"`
		Count          int      `json:"count"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	recommendations, err := s.ai.Recommend(c.UserContext(), aiclient.RecommendationRequest{
		ViewingHistory:     req.ViewingHistory,
		Interests:          req.Interests,
		NumRecommendations: req.Count,
	})
	if err != nil {
		return s.respondAIError(c, err)
	}

	return c.JSON(fiber.Map{"recommendations": recommendations})
}

// SummarizeProgram handles POST /api/ai/summary (protected, flag-gated)
func (s *Server) SummarizeProgram(c *fiber.Ctx) error {
	if !s.assistantEnabled(c) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	summary, err := s.ai.Summarize(c.UserContext(), aiclient.SummaryRequest{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return s.respondAIError(c, err)
	}

	return c.JSON(fiber.Map{"summary": summary})
}

// respondAIError keeps upstream failures distinguishable from our own:
// upstream statuses surface as 502, everything else goes through the usual
// AppError mapping.
func (s *Server) respondAIError(c *fiber.Ctx, err error) error {
	var apiErr *aiclient.APIError
	if errors.As(err, &apiErr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Text generation service unavailable",
		})
	}
	return models.RespondWithError(c, mapServiceError(err), err)
}
