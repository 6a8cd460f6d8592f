package server

import (
	"linkup/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/post/comment/:postId
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	// The body field is "text"; "content" is accepted as an alias.
	var req struct {
		Text    string `json:"text"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	text := req.Text
	if text == "" {
		text = req.Content
	}

	comment, err := s.commentService.AddComment(c.Context(), currentUserID(c), postID, text)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// GetComments handles GET /api/post/comment/:postId, oldest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	limit, offset := parseOffsetQuery(c, 50)
	comments, err := s.commentService.GetComments(c.Context(), postID, limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"comments": comments,
		"count":    len(comments),
	})
}

// DeleteComment handles DELETE /api/post/comment/:postId/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	// The comment must belong to the post named in the route
	comment, err := s.commentRepo.GetByID(c.Context(), commentID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if comment.PostID != postID {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundMessage("Comment not found on this post"))
	}

	if err := s.commentService.DeleteComment(c.Context(), currentUserID(c), commentID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
