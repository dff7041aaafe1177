package service

import (
	"context"
	"time"

	"myblog/internal/database"
	"myblog/internal/models"
	"myblog/internal/repository"
)

// LikeService keeps each (post, user) like pair in one of two states:
// absent or present. Toggle is a read-then-act transition; the unique index
// on the pair is the final arbiter under concurrent requests.
type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	tx       database.Transactor
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	tx database.Transactor,
) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
		userRepo: userRepo,
		tx:       tx,
	}
}

// Toggle flips the pair: absent inserts, present deletes. Two concurrent
// inserts of the same pair race; the loser hits the unique index and the
// repository surfaces Conflict. A delete that matches zero rows means the
// pair was already absent and is not an error. Either way the stored pair
// cardinality never leaves {0, 1}. Returns the post's resulting like count.
func (s *LikeService) Toggle(ctx context.Context, postID, userID uint) (int64, error) {
	if err := requireID(postID, "postId"); err != nil {
		return 0, err
	}
	if err := requireID(userID, "userId"); err != nil {
		return 0, err
	}

	var count int64
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		exists, err := s.userRepo.ExistsByID(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("User", userID)
		}

		exists, err = s.postRepo.ExistsByID(ctx, postID)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewNotFoundError("Post", postID)
		}

		liked, err := s.likeRepo.Exists(ctx, postID, userID)
		if err != nil {
			return err
		}
		if liked {
			if err := s.likeRepo.DeletePair(ctx, postID, userID); err != nil {
				return err
			}
		} else {
			like := &models.Like{
				PostID:    postID,
				UserID:    userID,
				CreatedAt: time.Now(),
			}
			if err := s.likeRepo.Create(ctx, like); err != nil {
				return err
			}
		}

		count, err = s.likeRepo.CountByPost(ctx, postID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Count is a passive read: only id positivity is validated, a nonexistent
// post simply counts zero.
func (s *LikeService) Count(ctx context.Context, postID uint) (int64, error) {
	if err := requireID(postID, "postId"); err != nil {
		return 0, err
	}
	return s.likeRepo.CountByPost(ctx, postID)
}
