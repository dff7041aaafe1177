package service

import (
	"context"
	"errors"
	"testing"

	"myblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// txStub runs the function directly without a database transaction.
type txStub struct{}

func (txStub) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeHasher is a PasswordHasher with transparent digests for tests.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (fakeHasher) Verify(plain, digest string) bool  { return "hashed:"+plain == digest }

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByEmailFn       func(context.Context, string) (*models.User, error)
	getByUsernameFn    func(context.Context, string) (*models.User, error)
	existsByIDFn       func(context.Context, uint) (bool, error)
	existsByEmailFn    func(context.Context, string) (bool, error)
	existsByUsernameFn func(context.Context, string) (bool, error)
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	deleteFn           func(context.Context, uint) error
	listFn             func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return s.existsByIDFn(ctx, id)
}
func (s *userRepoStub) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.existsByEmailFn(ctx, email)
}
func (s *userRepoStub) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.existsByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:          func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:       func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		existsByIDFn:       func(_ context.Context, _ uint) (bool, error) { return true, nil },
		existsByEmailFn:    func(_ context.Context, _ string) (bool, error) { return false, nil },
		existsByUsernameFn: func(_ context.Context, _ string) (bool, error) { return false, nil },
		createFn:           func(_ context.Context, _ *models.User) error { return nil },
		updateFn:           func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:           func(_ context.Context, _ uint) error { return nil },
		listFn:             func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.Post, error)
	existsByIDFn func(context.Context, uint) (bool, error)
	createFn     func(context.Context, *models.Post) error
	updateFn     func(context.Context, *models.Post) error
	deleteFn     func(context.Context, uint) error
	listFn       func(context.Context, int, int) ([]*models.Post, error)
	listByUserFn func(context.Context, uint, int, int) ([]*models.Post, error)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return s.existsByIDFn(ctx, id)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		getByIDFn:    func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		existsByIDFn: func(_ context.Context, _ uint) (bool, error) { return true, nil },
		createFn:     func(_ context.Context, _ *models.Post) error { return nil },
		updateFn:     func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		listFn:       func(_ context.Context, _, _ int) ([]*models.Post, error) { return nil, nil },
		listByUserFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	existsByIDFn func(context.Context, uint) (bool, error)
	createFn     func(context.Context, *models.Comment) error
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
	listByPostFn func(context.Context, uint, int, int) ([]*models.Comment, error)
}

func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return s.existsByIDFn(ctx, id)
}
func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		existsByIDFn: func(_ context.Context, _ uint) (bool, error) { return true, nil },
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		listByPostFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) { return nil, nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	existsFn      func(context.Context, uint, uint) (bool, error)
	createFn      func(context.Context, *models.Like) error
	deletePairFn  func(context.Context, uint, uint) error
	countByPostFn func(context.Context, uint) (int64, error)
}

func (s *likeRepoStub) Exists(ctx context.Context, postID, userID uint) (bool, error) {
	return s.existsFn(ctx, postID, userID)
}
func (s *likeRepoStub) Create(ctx context.Context, like *models.Like) error {
	return s.createFn(ctx, like)
}
func (s *likeRepoStub) DeletePair(ctx context.Context, postID, userID uint) error {
	return s.deletePairFn(ctx, postID, userID)
}
func (s *likeRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		existsFn:      func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		createFn:      func(_ context.Context, _ *models.Like) error { return nil },
		deletePairFn:  func(_ context.Context, _, _ uint) error { return nil },
		countByPostFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// assertAppError asserts that err is an AppError with the given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, "BAD_REQUEST")
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, "NOT_FOUND")
}

func assertConflict(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, "CONFLICT")
}
