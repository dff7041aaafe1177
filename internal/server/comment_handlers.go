package server

import (
	"myblog/internal/models"
	"myblog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment creates a comment on a post
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID  uint   `json:"user_id"`
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewBadRequestError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(ctx, service.CreateCommentInput{
		PostID:  postID,
		UserID:  req.UserID,
		Content: req.Content,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments returns a post's comments oldest first
func (s *Server) GetComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 50)

	comments, err := s.commentService.Feed(ctx, postID, p.Limit, p.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(comments)
}

// GetComment returns a single comment by id
func (s *Server) GetComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(ctx, commentID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(comment)
}

// UpdateComment updates a comment's content
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewBadRequestError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(ctx, service.UpdateCommentInput{
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment removes a comment
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(ctx, commentID); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
