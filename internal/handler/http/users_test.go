package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mkhalinin/go-library-manager/internal/store"
	"github.com/mkhalinin/go-library-manager/models"
)

func TestAddUserHandler_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)

	created := models.User{UserID: "u1", Username: "john", Password: "pass", Email: "j@x.com", Role: models.RoleRegular}
	mocks.users.EXPECT().AddUser(gomock.Any(), "user", "u1", "john", "pass", "j@x.com").Return(created, nil)

	rec, body := doRequest(t, router, http.MethodPost, "/api/users",
		`{"userId":"u1","username":"john","password":"pass","email":"j@x.com","role":"user"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, body, `"role":"Regular User"`)
	assert.NotContains(t, body, `"password"`, "password must never appear in responses")
}

func TestAddUserHandler_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)

	mocks.users.EXPECT().AddUser(gomock.Any(), "user", "u1", "john", "pass", "j@x.com").
		Return(models.User{}, store.ErrUserAlreadyExists)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/users",
		`{"userId":"u1","username":"john","password":"pass","email":"j@x.com","role":"user"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetAllUsersHandler_ByUsernameQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)

	admin := models.User{UserID: "admin001", Username: "admin", Role: models.RoleAdmin}
	mocks.users.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(admin, nil)

	rec, body := doRequest(t, router, http.MethodGet, "/api/users?username=admin", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"userId":"admin001"`)
}

func TestGetUserHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)

	mocks.users.EXPECT().GetUserByID(gomock.Any(), "ghost").
		Return(models.User{}, store.ErrUserNotFound)

	rec, _ := doRequest(t, router, http.MethodGet, "/api/users/ghost", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateUserHandler_UsesPathID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)

	mocks.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, u models.User) error {
			assert.Equal(t, "u1", u.UserID, "the path parameter identifies the account")
			return nil
		},
	)

	rec, _ := doRequest(t, router, http.MethodPut, "/api/users/u1",
		`{"userId":"ignored","username":"john","password":"pass","email":"j@x.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteUserHandler_NoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)

	mocks.users.EXPECT().DeleteUser(gomock.Any(), "u1").Return(nil)

	rec, _ := doRequest(t, router, http.MethodDelete, "/api/users/u1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
