package http

import (
	"errors"
	"net/http"

	"github.com/mkhalinin/go-library-manager/internal/service"
	"github.com/mkhalinin/go-library-manager/internal/store"
	"github.com/mkhalinin/go-library-manager/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	models.ErrUnknownCategory:      http.StatusBadRequest,
	models.ErrUnknownRole:          http.StatusBadRequest,

	service.ErrWrongPassword: http.StatusUnauthorized,

	store.ErrBookNotFound:   http.StatusNotFound,
	store.ErrUserNotFound:   http.StatusNotFound,
	store.ErrRecordNotFound: http.StatusNotFound,

	store.ErrBookAlreadyExists: http.StatusConflict,
	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrBookUnavailable:   http.StatusConflict,
	store.ErrAlreadyBorrowed:   http.StatusConflict,

	service.ErrStorageFailure: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends the mapped status with the error text as plain-text body.
// Internal errors never leak details to the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
