package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"myblog/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestLikeRepository_Exists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		count    int64
		expected bool
	}{
		{"Pair present", 1, true},
		{"Pair absent", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes" WHERE post_id = $1 AND user_id = $2`)).
				WithArgs(7, 3).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			exists, err := repo.Exists(ctx, 7, 3)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLikeRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	// The losing side of a racing insert hits the pair index.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "likes"`)).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_likes_post_user" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	err := repo.Create(ctx, &models.Like{PostID: 7, UserID: 3})
	assert.Equal(t, "CONFLICT", models.ErrorCode(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_DeletePair(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	t.Run("Removes the pair", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes" WHERE post_id = $1 AND user_id = $2`)).
			WithArgs(7, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.DeletePair(ctx, 7, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Zero matched rows is not an error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes" WHERE post_id = $1 AND user_id = $2`)).
			WithArgs(7, 3).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.NoError(t, repo.DeletePair(ctx, 7, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLikeRepository_CountByPost(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes" WHERE post_id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountByPost(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_CountByPost_DatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes"`)).
		WithArgs(7).
		WillReturnError(gorm.ErrInvalidDB)

	_, err := repo.CountByPost(ctx, 7)
	assert.Equal(t, "INTERNAL_ERROR", models.ErrorCode(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
