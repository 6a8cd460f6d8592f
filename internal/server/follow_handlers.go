package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/profile/follow/:id. Following an open account
// creates the edge immediately; a private account gets a pending request.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.graphService.Follow(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

// UnfollowUser handles DELETE /api/profile/unfollow/:id
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.graphService.Unfollow(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Unfollowed successfully"})
}

// AcceptFollowRequest handles POST /api/profile/accept-follow/:id, where :id
// is the requester whose pending request the authenticated user accepts.
func (s *Server) AcceptFollowRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.graphService.AcceptRequest(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Follow request accepted"})
}

// RejectFollowRequest handles POST /api/profile/reject-follow/:id
func (s *Server) RejectFollowRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.graphService.RejectRequest(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Follow request rejected"})
}

// CancelFollowRequest handles DELETE /api/profile/cancel-follow/:id, where
// :id is the private account the authenticated user had requested to follow.
func (s *Server) CancelFollowRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.graphService.CancelRequest(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Follow request cancelled"})
}

// GetFollowing handles GET /api/profile/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	users, err := s.graphService.GetFollowing(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"following": users,
		"count":     len(users),
	})
}

// GetFollowers handles GET /api/profile/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	users, err := s.graphService.GetFollowers(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"followers": users,
		"count":     len(users),
	})
}

// BlockUser handles POST /api/profile/block/:id
func (s *Server) BlockUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.graphService.Block(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User blocked"})
}

// UnblockUser handles POST /api/profile/unblock/:id
func (s *Server) UnblockUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.graphService.Unblock(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User unblocked"})
}
