package server

import "github.com/gofiber/fiber/v2"

// GetShows handles GET /api/catalog/shows (public, static editorial content)
func (s *Server) GetShows(c *fiber.Ctx) error {
	return c.JSON(s.catalog.Shows())
}

// GetPodcasts handles GET /api/catalog/podcasts (public, static editorial content)
func (s *Server) GetPodcasts(c *fiber.Ctx) error {
	return c.JSON(s.catalog.Podcasts())
}
