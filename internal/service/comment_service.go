package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"myblog/internal/database"
	"myblog/internal/models"
	"myblog/internal/repository"
)

// CommentService manages the comment lifecycle and per-post feeds.
//
// Update and delete intentionally perform no ownership check: callers are
// trusted to have resolved authorization at the transport boundary.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	tx          database.Transactor
}

type CreateCommentInput struct {
	PostID  uint
	UserID  uint
	Content string
}

type UpdateCommentInput struct {
	CommentID uint
	Content   string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	tx database.Transactor,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		tx:          tx,
	}
}

func validateCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", models.NewBadRequestError("Content is required")
	}
	if utf8.RuneCountInString(content) > models.MaxCommentLen {
		return "", models.NewBadRequestError("Comment too long (max 2000 characters)")
	}
	return content, nil
}

// CreateComment creates a comment on an existing post by an existing user.
// The user and post references are resolved independently so the caller
// learns which side is missing.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := requireID(in.UserID, "userId"); err != nil {
		return nil, err
	}
	if err := requireID(in.PostID, "postId"); err != nil {
		return nil, err
	}
	content, err := validateCommentContent(in.Content)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &models.Comment{
		Content:   content,
		PostID:    in.PostID,
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		exists, err := s.userRepo.ExistsByID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("User", in.UserID)
		}

		exists, err = s.postRepo.ExistsByID(ctx, in.PostID)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("Post", in.PostID)
		}

		return s.commentRepo.Create(ctx, comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	if err := requireID(id, "commentId"); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, id)
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if err := requireID(in.CommentID, "commentId"); err != nil {
		return nil, err
	}
	content, err := validateCommentContent(in.Content)
	if err != nil {
		return nil, err
	}

	var comment *models.Comment
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		comment, err = s.commentRepo.GetByID(ctx, in.CommentID)
		if err != nil {
			return err
		}

		comment.Content = content
		comment.UpdatedAt = time.Now()
		return s.commentRepo.Update(ctx, comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	if err := requireID(id, "commentId"); err != nil {
		return err
	}
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		exists, err := s.commentRepo.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("Comment", id)
		}
		return s.commentRepo.Delete(ctx, id)
	})
}

// Feed returns an existing post's comments oldest first, in thread order.
func (s *CommentService) Feed(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	if err := requireID(postID, "postId"); err != nil {
		return nil, err
	}
	exists, err := s.postRepo.ExistsByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}
