package service

import (
	"context"

	"github.com/mkhalinin/go-library-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_services.go -package=mock

type BookService interface {
	AddBook(ctx context.Context, categoryTag, isbn, title, author string, year int) (models.Book, error)
	GetAllBooks(ctx context.Context) ([]models.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (models.Book, error)
	UpdateBook(ctx context.Context, book models.Book) error
	DeleteBook(ctx context.Context, isbn string) error
}

type UserService interface {
	AddUser(ctx context.Context, roleTag, userID, username, password, email string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, userID string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, userID string) error
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

type LendingService interface {
	BorrowBook(ctx context.Context, userID, isbn string) (models.BorrowRecord, error)
	ReturnBook(ctx context.Context, userID, isbn string) (models.BorrowRecord, error)
	GetAllBorrowRecords(ctx context.Context) ([]models.BorrowRecord, error)
}
