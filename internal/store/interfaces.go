package store

import (
	"context"
	"time"

	"github.com/mkhalinin/go-library-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_repositories.go -package=mock

// BookRepository persists the library catalogue.
type BookRepository interface {
	Create(ctx context.Context, book models.Book) error
	GetAll(ctx context.Context) ([]models.Book, error)
	GetByISBN(ctx context.Context, isbn string) (models.Book, error)
	Update(ctx context.Context, book models.Book) error
	Delete(ctx context.Context, isbn string) error
}

// UserRepository persists library accounts.
type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetByID(ctx context.Context, userID string) (models.User, error)
	Update(ctx context.Context, user models.User) error
	Delete(ctx context.Context, userID string) error
}

// BorrowRepository persists lending transactions and keeps book availability
// consistent with them.
type BorrowRepository interface {
	// CreateBorrow atomically inserts the record and flips the book to
	// unavailable. It fails without side effects when the book is absent,
	// already lent out, or the user already holds an active record for it.
	CreateBorrow(ctx context.Context, record models.BorrowRecord) error

	// Return atomically closes the earliest active record for the
	// (user, book) pair and flips the book back to available. Returns the
	// closed record.
	Return(ctx context.Context, userID, bookISBN string, returnedAt time.Time) (models.BorrowRecord, error)

	GetAll(ctx context.Context) ([]models.BorrowRecord, error)
}
