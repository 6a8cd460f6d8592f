package server

import (
	"linkup/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/post/create. The body field is "text";
// "content" is accepted as an alias.
func (s *Server) CreatePost(c *fiber.Ctx) error {
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

	post, err := s.postService.CreatePost(c.Context(), currentUserID(c), text)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

// GetPost handles GET /api/post/:postId
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), postID, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

// DeletePost handles DELETE /api/post/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), currentUserID(c), postID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// GetUserPosts handles GET /api/profile/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := s.userService.GetProfile(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}

	limit, offset := parseOffsetQuery(c, 20)
	posts, err := s.postRepo.GetByUserID(c.Context(), id, limit, offset, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts": posts,
		"count": len(posts),
	})
}

// LikePost handles POST /api/post/like/:postId. Liking an already-liked post
// is a no-op; the returned count is accurate either way.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	result, err := s.postService.Like(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"postId":     result.PostID,
		"likesCount": result.Likes,
		"liked":      result.Liked,
	})
}

// UnlikePost handles DELETE /api/post/unlike/:postId
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	result, err := s.postService.Unlike(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"postId":     result.PostID,
		"likesCount": result.Likes,
		"liked":      result.Liked,
	})
}

// SharePost handles POST /api/post/share/:postId
func (s *Server) SharePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	result, err := s.postService.Share(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}
