package service

import (
	"context"
	"strings"
	"time"

	"myblog/internal/database"
	"myblog/internal/models"
	"myblog/internal/repository"
)

// UserService manages the user lifecycle and credential changes.
type UserService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tx       database.Transactor
}

type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

type UpdateUserInput struct {
	UserID   uint
	Username string
	Email    string
}

type ChangePasswordInput struct {
	UserID      uint
	OldPassword string
	NewPassword string
}

func NewUserService(userRepo repository.UserRepository, hasher PasswordHasher, tx database.Transactor) *UserService {
	return &UserService{userRepo: userRepo, hasher: hasher, tx: tx}
}

// CreateUser registers a new user. Email is stored lowercase-trimmed and the
// username trimmed; both must be unique. The existence pre-checks give a
// friendly Conflict early, but the unique indexes remain the guarantee: a
// save-time violation from a concurrent create also maps to Conflict.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	email := normalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)

	if username == "" {
		return nil, models.NewBadRequestError("Username is required")
	}
	if email == "" {
		return nil, models.NewBadRequestError("Email is required")
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, models.NewBadRequestError("Password is required")
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	now := time.Now()
	user := &models.User{
		Username:  username,
		Email:     email,
		Password:  digest,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		taken, err := s.userRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return models.NewConflictError("Email already taken: "+email, nil)
		}

		taken, err = s.userRepo.ExistsByUsername(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			return models.NewConflictError("Username already taken: "+username, nil)
		}

		return s.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	if err := requireID(id, "userId"); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	normalized := normalizeEmail(email)
	if normalized == "" {
		return nil, models.NewBadRequestError("Email is required")
	}
	user, err := s.userRepo.GetByEmail(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", normalized)
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	normalized := strings.TrimSpace(username)
	if normalized == "" {
		return nil, models.NewBadRequestError("Username is required")
	}
	user, err := s.userRepo.GetByUsername(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", normalized)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateUser changes username and email. Uniqueness is only re-checked when
// the normalized value actually differs from the stored one; equality is
// case-insensitive for email.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	if err := requireID(in.UserID, "userId"); err != nil {
		return nil, err
	}

	email := normalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)

	if username == "" {
		return nil, models.NewBadRequestError("Username is required")
	}
	if email == "" {
		return nil, models.NewBadRequestError("Email is required")
	}

	var user *models.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.userRepo.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}

		if !strings.EqualFold(user.Email, email) {
			taken, err := s.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return err
			}
			if taken {
				return models.NewConflictError("User with email "+email+" already exists", nil)
			}
		}

		if user.Username != username {
			taken, err := s.userRepo.ExistsByUsername(ctx, username)
			if err != nil {
				return err
			}
			if taken {
				return models.NewConflictError("User with username "+username+" already exists", nil)
			}
		}

		user.Email = email
		user.Username = username
		user.UpdatedAt = time.Now()
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the old password, rejects a blank or unchanged new
// password, and stores the re-hashed digest.
func (s *UserService) ChangePassword(ctx context.Context, in ChangePasswordInput) (*models.User, error) {
	if err := requireID(in.UserID, "userId"); err != nil {
		return nil, err
	}

	var user *models.User
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.userRepo.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}

		if !s.hasher.Verify(in.OldPassword, user.Password) {
			return models.NewBadRequestError("Old password is incorrect")
		}
		if strings.TrimSpace(in.NewPassword) == "" {
			return models.NewBadRequestError("New password must not be blank")
		}
		if s.hasher.Verify(in.NewPassword, user.Password) {
			return models.NewBadRequestError("New password must differ from the old one")
		}

		digest, err := s.hasher.Hash(in.NewPassword)
		if err != nil {
			return models.NewInternalError(err)
		}
		user.Password = digest
		user.UpdatedAt = time.Now()
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user. A foreign-key violation from posts, comments
// or likes still referencing the user maps to Conflict.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := requireID(id, "userId"); err != nil {
		return err
	}
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		exists, err := s.userRepo.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("User", id)
		}
		return s.userRepo.Delete(ctx, id)
	})
}
