package server

import (
	"myblog/internal/models"
	"myblog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost creates a post for an existing author
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		UserID    uint    `json:"user_id"`
		Title     string  `json:"title"`
		ImagePath *string `json:"image_path"`
		Content   string  `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewBadRequestError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		UserID:    req.UserID,
		Title:     req.Title,
		ImagePath: req.ImagePath,
		Content:   req.Content,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetFeed returns all posts newest first
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := parsePagination(c, 20)

	posts, err := s.postService.Feed(ctx, p.Limit, p.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(posts)
}

// GetUserFeed returns an author's posts newest first
func (s *Server) GetUserFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)

	posts, err := s.postService.FeedByUser(ctx, userID, p.Limit, p.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(posts)
}

// GetPost returns a single post by id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost updates a post's title, content and image path
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title     string  `json:"title"`
		ImagePath *string `json:"image_path"`
		Content   string  `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewBadRequestError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		PostID:    id,
		Title:     req.Title,
		ImagePath: req.ImagePath,
		Content:   req.Content,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(post)
}

// DeletePost removes a post
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(ctx, id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
