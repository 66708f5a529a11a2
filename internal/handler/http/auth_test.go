package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mkhalinin/go-library-manager/internal/service"
	"github.com/mkhalinin/go-library-manager/internal/store"
	"github.com/mkhalinin/go-library-manager/models"
)

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)

	admin := models.User{UserID: "admin001", Username: "admin", Password: "admin123", Role: models.RoleAdmin}
	mocks.users.EXPECT().Authenticate(gomock.Any(), "admin", "admin123").Return(admin, nil)

	rec, body := doRequest(t, router, http.MethodPost, "/api/user/login",
		`{"username":"admin","password":"admin123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"userId":"admin001"`)
	assert.NotContains(t, body, "admin123", "password must never appear in responses")
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)

	mocks.users.EXPECT().Authenticate(gomock.Any(), "admin", "nope").
		Return(models.User{}, service.ErrWrongPassword)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/user/login",
		`{"username":"admin","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)

	mocks.users.EXPECT().Authenticate(gomock.Any(), "ghost", "pass").
		Return(models.User{}, store.ErrUserNotFound)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/user/login",
		`{"username":"ghost","password":"pass"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/user/login", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
