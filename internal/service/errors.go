package service

import (
	"errors"
	"fmt"

	"github.com/mkhalinin/go-library-manager/internal/store"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrStorageFailure marks repository errors that carry no domain
	// meaning: lost connections, failed transactions, corrupt rows.
	ErrStorageFailure = errors.New("storage failure")
)

// domainErrors are repository outcomes that the caller can act on; they pass
// through the service layer unchanged so handlers can map them by identity.
var domainErrors = []error{
	store.ErrBookNotFound,
	store.ErrBookAlreadyExists,
	store.ErrUserNotFound,
	store.ErrUserAlreadyExists,
	store.ErrRecordNotFound,
	store.ErrBookUnavailable,
	store.ErrAlreadyBorrowed,
}

// convertStorageError keeps domain sentinels intact and folds everything else
// into ErrStorageFailure.
func convertStorageError(err error) error {
	for _, sentinel := range domainErrors {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrStorageFailure, err)
}
