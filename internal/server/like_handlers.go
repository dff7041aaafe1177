package server

import (
	"myblog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleLike flips the (post, user) like pair and returns the resulting count
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewBadRequestError("Invalid request body"))
	}

	count, err := s.likeService.Toggle(ctx, postID, req.UserID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"post_id":     postID,
		"likes_count": count,
	})
}

// GetLikeCount returns a post's like count
func (s *Server) GetLikeCount(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	count, err := s.likeService.Count(ctx, postID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"post_id":     postID,
		"likes_count": count,
	})
}
