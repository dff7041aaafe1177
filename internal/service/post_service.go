package service

import (
	"context"
	"strings"
	"time"

	"myblog/internal/database"
	"myblog/internal/models"
	"myblog/internal/repository"
)

// PostService manages the post lifecycle and feeds.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	tx       database.Transactor
}

type CreatePostInput struct {
	UserID uint
	Title  string
	// ImagePath is optional; blank values are normalized to absent.
	ImagePath *string
	Content   string
}

type UpdatePostInput struct {
	PostID    uint
	Title     string
	ImagePath *string
	Content   string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, tx database.Transactor) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo, tx: tx}
}

func (s *PostService) validateContent(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return "", "", models.NewBadRequestError("Title is required")
	}
	if content == "" {
		return "", "", models.NewBadRequestError("Content is required")
	}
	return title, content, nil
}

// CreatePost creates a post for an existing author. The author reference is
// resolved before the insert; a missing author is NotFound, not Conflict.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := requireID(in.UserID, "userId"); err != nil {
		return nil, err
	}
	title, content, err := s.validateContent(in.Title, in.Content)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := &models.Post{
		Title:     title,
		Content:   content,
		ImagePath: normalizeOptional(in.ImagePath),
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
		return s.postRepo.Create(ctx, post)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	if err := requireID(id, "postId"); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost applies the same normalization as create and bumps UpdatedAt.
// CreatedAt is never touched.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if err := requireID(in.PostID, "postId"); err != nil {
		return nil, err
	}
	title, content, err := s.validateContent(in.Title, in.Content)
	if err != nil {
		return nil, err
	}

	var post *models.Post
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		post, err = s.postRepo.GetByID(ctx, in.PostID)
		if err != nil {
			return err
		}

		post.Title = title
		post.Content = content
		post.ImagePath = normalizeOptional(in.ImagePath)
		post.UpdatedAt = time.Now()
		return s.postRepo.Update(ctx, post)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post. A restrict-on-delete violation from dependent
// comments or likes maps to Conflict.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if err := requireID(id, "postId"); err != nil {
		return err
	}
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		exists, err := s.postRepo.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("Post", id)
		}
		return s.postRepo.Delete(ctx, id)
	})
}

// Feed returns all posts newest first.
func (s *PostService) Feed(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset)
}

// FeedByUser returns an existing author's posts newest first.
func (s *PostService) FeedByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	if err := requireID(userID, "userId"); err != nil {
		return nil, err
	}
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", userID)
	}
	return s.postRepo.ListByUser(ctx, userID, limit, offset)
}
