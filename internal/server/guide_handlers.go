package server

import (
	"time"

	"evtele/internal/models"
	"evtele/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetGuide handles GET /api/programs?date=YYYY-MM-DD&type=tv&category=Music.
// Date defaults to today; programs already started today are filtered out,
// and a past date always yields an empty schedule.
func (s *Server) GetGuide(c *fiber.Ctx) error {
	ctx := c.UserContext()
	now := time.Now()

	day := now
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, now.Location())
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid date, expected YYYY-MM-DD"))
		}
		day = parsed
	}

	kind := c.Query("type", models.KindTV)
	category := c.Query("category")

	programs, err := s.programService.Guide(ctx, day, kind, category, now)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(programs)
}

// GetProgram handles GET /api/programs/:id
func (s *Server) GetProgram(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	program, err := s.programService.GetProgram(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(program)
}

// programRequest is the admin payload for creating or updating a program.
type programRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AirDate     *time.Time `json:"date"`
	AirTime     string     `json:"time"`
	Duration    string     `json:"duration"`
	Category    string     `json:"category"`
	Guests      string     `json:"guests"`
	ImageURL    string     `json:"image_url"`
	Kind        string     `json:"type"`
}

func (r programRequest) toInput() service.ProgramInput {
	return service.ProgramInput{
		Title:       r.Title,
		Description: r.Description,
		AirDate:     r.AirDate,
		AirTime:     r.AirTime,
		Duration:    r.Duration,
		Category:    r.Category,
		Guests:      r.Guests,
		ImageURL:    r.ImageURL,
		Kind:        r.Kind,
	}
}

// CreateProgram handles POST /api/admin/programs (admin only)
func (s *Server) CreateProgram(c *fiber.Ctx) error {
	var req programRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	program, err := s.programService.CreateProgram(c.UserContext(), req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(program)
}

// UpdateProgram handles PUT /api/admin/programs/:id (admin only)
func (s *Server) UpdateProgram(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req programRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	program, err := s.programService.UpdateProgram(c.UserContext(), id, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(program)
}

// DeleteProgram handles DELETE /api/admin/programs/:id (admin only)
func (s *Server) DeleteProgram(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.programService.DeleteProgram(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// GetCategories handles GET /api/categories (public)
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.programService.ListCategories(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(categories)
}

// CreateCategory handles POST /api/admin/categories (admin only)
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category, err := s.programService.CreateCategory(c.UserContext(), req.Name)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// DeleteCategory handles DELETE /api/admin/categories/:id (admin only)
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.programService.DeleteCategory(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.SendStatus(fiber.StatusOK)
}
