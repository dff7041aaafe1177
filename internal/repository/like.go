package repository

import (
	"context"

	"myblog/internal/database"
	"myblog/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for the (post, user) like pair.
type LikeRepository interface {
	Exists(ctx context.Context, postID, userID uint) (bool, error)
	Create(ctx context.Context, like *models.Like) error
	DeletePair(ctx context.Context, postID, userID uint) error
	CountByPost(ctx context.Context, postID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) conn(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *likeRepository) Exists(ctx context.Context, postID, userID uint) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Create inserts the pair row. A concurrent insert of the same pair loses to
// the unique index and surfaces as Conflict.
func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	if err := r.conn(ctx).Create(like).Error; err != nil {
		if isUniqueConstraintError(err) || isForeignKeyError(err) {
			return models.NewConflictError("Like could not be saved due to a database constraint", err)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// DeletePair removes the pair row. Deleting an already-absent pair is not an
// error; the pair is simply in the Absent state.
func (r *likeRepository) DeletePair(ctx context.Context, postID, userID uint) error {
	err := r.conn(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
