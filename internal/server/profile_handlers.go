package server

import (
	"linkup/internal/models"
	"linkup/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile/userdata
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	// AuthRequired already loaded the account
	if user, ok := c.Locals("user").(*models.User); ok && user != nil {
		return c.JSON(fiber.Map{"user": user})
	}

	user, err := s.userService.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// GetUserProfile handles GET /api/profile/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateMyProfile handles POST /api/profile/updatedata. Only allow-listed
// fields are applied; anything else in the body is ignored.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var update service.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if update.NameFirst == nil && update.NameLast == nil && update.Email == nil &&
		update.Gender == nil && update.Avatar == nil && update.Age == nil &&
		update.Bio == nil && update.IsPrivate == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No valid fields to update"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), currentUserID(c), &update)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// GetRelationshipStatus handles GET /api/profile/status/:id
func (s *Server) GetRelationshipStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, err := s.graphService.RelationshipBetween(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"status": status})
}
