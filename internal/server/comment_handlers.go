package server

import (
	"time"

	"evtele/internal/models"
	"evtele/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment appends a comment to a scope (protected). Comments are
// immutable once posted; there are no update or delete endpoints.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := mustUserID(c)

	scope := c.Params("scope")

	var req struct {
		Text string `json:"text"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	created, err := s.commentService.PostComment(ctx, service.PostCommentInput{
		Scope:    scope,
		UserID:   userID,
		Username: user.Username,
		Body:     req.Text,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	s.publishScopeEvent(scope, EventCommentCreated, map[string]interface{}{
		"comment":    created,
		"updated_at": time.Now().UTC().Format(time.RFC3339Nano),
	})

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetComments returns the most recent comments for a scope, newest first (public).
func (s *Server) GetComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	comments, err := s.commentService.ListRecent(ctx, c.Params("scope"))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(comments)
}
