package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetPublicFeed handles GET /api/post/public-feed. Pages past the end come
// back empty with the same totals, not as errors.
func (s *Server) GetPublicFeed(c *fiber.Ctx) error {
	page, limit := parsePageQuery(c)

	feed, err := s.feedService.PublicFeed(c.Context(), page, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// GetFollowingFeed handles GET /api/post/following-feed/:userId
func (s *Server) GetFollowingFeed(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	page, limit := parsePageQuery(c)
	feed, err := s.feedService.FollowingFeed(c.Context(), userID, page, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}
