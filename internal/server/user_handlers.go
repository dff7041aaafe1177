package server

import (
	"myblog/internal/models"
	"myblog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUser registers a new user
func (s *Server) CreateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewBadRequestError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(ctx, service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUsers lists users. An email or username query parameter narrows the
// lookup to a single user.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if email := c.Query("email"); email != "" {
		user, err := s.userService.GetUserByEmail(ctx, email)
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(user)
	}
	if username := c.Query("username"); username != "" {
		user, err := s.userService.GetUserByUsername(ctx, username)
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(user)
	}

	p := parsePagination(c, 20)
	users, err := s.userService.ListUsers(ctx, p.Limit, p.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(users)
}

// GetUser returns a single user by id
func (s *Server) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(ctx, id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser changes a user's username and email
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewBadRequestError("Invalid request body"))
	}

	user, err := s.userService.UpdateUser(ctx, service.UpdateUserInput{
		UserID:   id,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(user)
}

// ChangePassword verifies the old password and stores a new digest
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewBadRequestError("Invalid request body"))
	}

	user, err := s.userService.ChangePassword(ctx, service.ChangePasswordInput{
		UserID:      id,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(user)
}

// DeleteUser removes a user
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(ctx, id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
