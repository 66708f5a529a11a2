package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/internal/mock"
	"github.com/mkhalinin/go-library-manager/internal/service"
)

type testMocks struct {
	books   *mock.MockBookService
	users   *mock.MockUserService
	lending *mock.MockLendingService
}

// newTestRouter builds the full router on top of mocked services so tests
// exercise real routing and middleware.
func newTestRouter(t *testing.T, ctrl *gomock.Controller) (http.Handler, testMocks) {
	t.Helper()

	mocks := testMocks{
		books:   mock.NewMockBookService(ctrl),
		users:   mock.NewMockUserService(ctrl),
		lending: mock.NewMockLendingService(ctrl),
	}
	services := &service.Services{
		BookService:    mocks.books,
		UserService:    mocks.users,
		LendingService: mocks.lending,
	}

	return NewHandler(services, logger.Nop()).Init(), mocks
}

// doRequest runs the request through the router and returns the recorded
// response with its body read out.
func doRequest(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	respBody, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return rec, string(respBody)
}
