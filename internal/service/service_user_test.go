package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/internal/mock"
	"github.com/mkhalinin/go-library-manager/internal/store"
	"github.com/mkhalinin/go-library-manager/models"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, logger.Nop()), repo
}

func TestAddUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) error {
			assert.Equal(t, models.RoleRegular, u.Role)
			return nil
		},
	)

	user, err := svc.AddUser(ctx, "user", "u1", "john", "pass", "j@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
	assert.False(t, user.IsAdmin())
}

func TestAddUser_BlankFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.AddUser(ctx, "user", "", "john", "pass", "j@x.com")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.AddUser(ctx, "user", "u1", "john", "", "j@x.com")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAddUser_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)

	_, err := svc.AddUser(context.Background(), "librarian", "u1", "john", "pass", "j@x.com")
	assert.ErrorIs(t, err, models.ErrUnknownRole)
}

func TestAddUser_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(store.ErrUserAlreadyExists)

	_, err := svc.AddUser(ctx, "user", "u1", "john", "pass", "j@x.com")
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestUpdateUser_PreservesStoredRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: "admin001", Username: "admin", Password: "admin123", Role: models.RoleAdmin}
	gomock.InOrder(
		repo.EXPECT().GetByID(ctx, "admin001").Return(stored, nil),
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) error {
				assert.Equal(t, models.RoleAdmin, u.Role, "profile update must not change the role")
				assert.Equal(t, "newmail@library.com", u.Email)
				return nil
			},
		),
	)

	err := svc.UpdateUser(ctx, models.User{
		UserID:   "admin001",
		Username: "admin",
		Password: "admin123",
		Email:    "newmail@library.com",
		Role:     models.RoleRegular, // caller-supplied role is ignored
	})
	require.NoError(t, err)
}

func TestUpdateUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, "missing").Return(models.User{}, store.ErrUserNotFound)

	err := svc.UpdateUser(ctx, models.User{UserID: "missing", Username: "x", Password: "p"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: "admin001", Username: "admin", Password: "admin123", Role: models.RoleAdmin}
	repo.EXPECT().GetByUsername(ctx, "admin").Return(stored, nil)

	user, err := svc.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin001", user.UserID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: "admin001", Username: "admin", Password: "admin123", Role: models.RoleAdmin}
	repo.EXPECT().GetByUsername(ctx, "admin").Return(stored, nil)

	_, err := svc.Authenticate(ctx, "admin", "nope")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetByUsername(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Authenticate(ctx, "ghost", "pass")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestDeleteUser_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "u1").Return(errors.New("db down"))

	assert.ErrorIs(t, svc.DeleteUser(ctx, "u1"), ErrStorageFailure)
}
