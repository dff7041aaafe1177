package repository

import (
	"context"
	"errors"

	"myblog/internal/database"
	"myblog/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, comment *models.Comment) error
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) conn(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.conn(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.Comment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.conn(ctx).Create(comment).Error; err != nil {
		if isForeignKeyError(err) || isUniqueConstraintError(err) {
			return models.NewConflictError("Comment could not be created due to a database constraint", err)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.conn(ctx).Save(comment).Error; err != nil {
		if isForeignKeyError(err) || isUniqueConstraintError(err) {
			return models.NewConflictError("Comment could not be updated due to a database constraint", err)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.conn(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewConflictError("Comment could not be deleted due to a database constraint", err)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// ListByPost returns a post's comments oldest first, in thread order.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.conn(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
