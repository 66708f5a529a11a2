package store

import (
	"github.com/mkhalinin/go-library-manager/internal/logger"
)

// Repositories bundles every repository backed by one gateway.
type Repositories struct {
	Books   BookRepository
	Users   UserRepository
	Borrows BorrowRepository
}

// NewRepositories constructs all repositories over the given gateway.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Books:   NewBookRepository(db, logger),
		Users:   NewUserRepository(db, logger),
		Borrows: NewBorrowRepository(db, logger),
	}
}
